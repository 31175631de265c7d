package analyze

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testRequest() Request {
	return Request{
		Content:       "paper text",
		SummaryLength: "standard",
		FocusAreas:    []string{"key-findings"},
		OutputFormat:  "pdf",
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"summary": "the summary"})
	}))
	defer server.Close()

	outcome := NewClient(server.URL).Analyze(context.Background(), testRequest())

	if !outcome.Success() {
		t.Fatalf("Expected success, got %v", outcome.Err)
	}
	if outcome.Summary != "the summary" {
		t.Errorf("Expected summary text, got %q", outcome.Summary)
	}
	if got.Content != "paper text" || got.SummaryLength != "standard" {
		t.Errorf("Request not carried verbatim: %+v", got)
	}
}

func TestAnalyzeStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   FailureKind
	}{
		{http.StatusTooManyRequests, RateLimited},
		{http.StatusPaymentRequired, CreditsExhausted},
		{http.StatusInternalServerError, UpstreamError},
		{http.StatusBadRequest, UpstreamError},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
		}))

		outcome := NewClient(server.URL).Analyze(context.Background(), testRequest())
		server.Close()

		if outcome.Success() {
			t.Errorf("Status %d: expected failure", tt.status)
			continue
		}
		if outcome.Err.Kind != tt.kind {
			t.Errorf("Status %d: expected kind %d, got %d", tt.status, tt.kind, outcome.Err.Kind)
		}
	}
}

func TestAnalyzeFailureMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	outcome := NewClient(server.URL).Analyze(context.Background(), testRequest())
	if outcome.Err == nil || outcome.Err.Message != "Rate limit exceeded. Please try again later." {
		t.Errorf("Expected fixed rate limit message, got %v", outcome.Err)
	}
}

func TestAnalyzeEmptySummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	outcome := NewClient(server.URL).Analyze(context.Background(), testRequest())

	if outcome.Success() {
		t.Fatal("Expected failure for missing summary field")
	}
	if outcome.Err.Kind != EmptySummary {
		t.Errorf("Expected EmptySummary, got kind %d", outcome.Err.Kind)
	}
	if outcome.Err.Message != "No summary generated from AI" {
		t.Errorf("Expected fixed empty-summary message, got %q", outcome.Err.Message)
	}
}

func TestAnalyzeNetworkError(t *testing.T) {
	// A closed server guarantees a transport-level failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	outcome := NewClient(server.URL).Analyze(context.Background(), testRequest())

	if outcome.Success() {
		t.Fatal("Expected failure for unreachable endpoint")
	}
	if outcome.Err.Kind != NetworkError {
		t.Errorf("Expected NetworkError, got kind %d", outcome.Err.Kind)
	}
}

func TestAnalyzeSingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	NewClient(server.URL).Analyze(context.Background(), testRequest())

	if attempts != 1 {
		t.Errorf("Expected exactly one attempt, got %d", attempts)
	}
}
