package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/research4me/paper-analyzer/internal/gateway"
)

// fakeSummarizer scripts the gateway call.
type fakeSummarizer struct {
	summary string
	err     error
	calls   int
	lastSys string
	lastUsr string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.lastSys = systemPrompt
	f.lastUsr = userPrompt
	return f.summary, f.err
}

func postAnalyze(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body["error"]
}

func TestAnalyzeSuccess(t *testing.T) {
	fake := &fakeSummarizer{summary: "the summary"}
	w := postAnalyze(t, NewAnalyze(fake), `{"content":"paper text","summaryLength":"standard","focusAreas":["methodology"],"outputFormat":"pdf"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["summary"] != "the summary" {
		t.Errorf("Expected summary in response, got %q", body["summary"])
	}

	if fake.lastSys != gateway.SystemPrompt {
		t.Error("Expected the fixed system prompt")
	}
	if !strings.Contains(fake.lastUsr, "paper text") {
		t.Error("Expected content embedded in user prompt")
	}
	if !strings.Contains(fake.lastUsr, "Focus especially on: methodology.") {
		t.Error("Expected focus clause in user prompt")
	}
}

func TestAnalyzeEmptyContent(t *testing.T) {
	fake := &fakeSummarizer{}

	for _, body := range []string{`{"content":""}`, `{"content":"   \n\t "}`, `{}`} {
		w := postAnalyze(t, NewAnalyze(fake), body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Body %q: expected status 400, got %d", body, w.Code)
		}
		if msg := decodeError(t, w); msg != "No content provided for analysis" {
			t.Errorf("Body %q: expected fixed message, got %q", body, msg)
		}
	}

	if fake.calls != 0 {
		t.Errorf("Empty content must never reach the gateway; got %d calls", fake.calls)
	}
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	w := postAnalyze(t, NewAnalyze(&fakeSummarizer{}), `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestAnalyzeGatewayStatusMapping(t *testing.T) {
	tests := []struct {
		upstream int
		status   int
		message  string
	}{
		{429, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."},
		{402, http.StatusPaymentRequired, "AI credits exhausted. Please add funds to continue."},
		{500, http.StatusInternalServerError, "AI gateway error: 500"},
		{403, http.StatusInternalServerError, "AI gateway error: 403"},
	}

	for _, tt := range tests {
		fake := &fakeSummarizer{err: &gateway.StatusError{StatusCode: tt.upstream}}
		w := postAnalyze(t, NewAnalyze(fake), `{"content":"x"}`)

		if w.Code != tt.status {
			t.Errorf("Upstream %d: expected status %d, got %d", tt.upstream, tt.status, w.Code)
		}
		if msg := decodeError(t, w); msg != tt.message {
			t.Errorf("Upstream %d: expected message %q, got %q", tt.upstream, tt.message, msg)
		}
	}
}

func TestAnalyzeNoSummary(t *testing.T) {
	fake := &fakeSummarizer{err: gateway.ErrNoSummary}
	w := postAnalyze(t, NewAnalyze(fake), `{"content":"x"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "No summary generated from AI" {
		t.Errorf("Expected fixed message, got %q", msg)
	}
}
