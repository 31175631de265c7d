package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Client sends analysis requests to the analyze endpoint and translates the
// HTTP result into a typed Outcome. Exactly one attempt per call; no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given analyze endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type analyzeResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error"`
}

// Analyze posts the request and maps the response to an Outcome:
// 429 → rate limited, 402 → credits exhausted, other non-2xx → upstream
// error, 2xx without a summary → empty summary, transport failure → network
// error.
func (c *Client) Analyze(ctx context.Context, req Request) Outcome {
	body, err := json.Marshal(req)
	if err != nil {
		return Outcome{Err: networkError(err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Err: networkError(err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Outcome{Err: networkError(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return Outcome{Err: rateLimited()}
	case resp.StatusCode == http.StatusPaymentRequired:
		return Outcome{Err: creditsExhausted()}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail := ""
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			var parsed analyzeResponse
			if json.Unmarshal(raw, &parsed) == nil {
				detail = parsed.Error
			}
		}
		return Outcome{Err: upstreamError(resp.StatusCode, detail)}
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Outcome{Err: emptySummary()}
	}
	if parsed.Summary == "" {
		return Outcome{Err: emptySummary()}
	}

	return Outcome{Summary: parsed.Summary}
}
