package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/research4me/paper-analyzer/internal/gateway"
	"github.com/research4me/paper-analyzer/internal/transport/response"
)

// Summarizer is the gateway call the handler depends on.
type Summarizer interface {
	Summarize(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Analyze implements the analyze endpoint: validate the content, build the
// prompts, make the one gateway call, and map the result onto the wire
// contract.
type Analyze struct {
	summarizer Summarizer
}

func NewAnalyze(summarizer Summarizer) *Analyze {
	return &Analyze{
		summarizer: summarizer,
	}
}

type analyzeRequest struct {
	Content       string   `json:"content"`
	SummaryLength string   `json:"summaryLength"`
	FocusAreas    []string `json:"focusAreas"`
	OutputFormat  string   `json:"outputFormat"`
}

func (h *Analyze) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Server-side defense: empty content should never be sent, but reject
	// it here if it arrives anyway.
	if strings.TrimSpace(req.Content) == "" {
		response.WriteError(w, http.StatusBadRequest, "No content provided for analysis")
		return
	}

	userPrompt := gateway.BuildUserPrompt(req.Content, req.SummaryLength, req.FocusAreas, req.OutputFormat)

	log.Printf("Calling AI gateway for paper analysis length=%s focus_areas=%d format=%s",
		req.SummaryLength, len(req.FocusAreas), req.OutputFormat)

	summary, err := h.summarizer.Summarize(r.Context(), gateway.SystemPrompt, userPrompt)
	if err != nil {
		h.writeGatewayError(w, err)
		return
	}

	log.Printf("Paper analysis completed successfully")
	response.WriteSummary(w, summary)
}

// writeGatewayError maps gateway failures onto the endpoint's error
// contract: 429 and 402 pass through with their fixed messages, everything
// else is a 500.
func (h *Analyze) writeGatewayError(w http.ResponseWriter, err error) {
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests:
			response.WriteError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		case http.StatusPaymentRequired:
			response.WriteError(w, http.StatusPaymentRequired, "AI credits exhausted. Please add funds to continue.")
			return
		default:
			log.Printf("AI gateway error: %d %s", statusErr.StatusCode, statusErr.Body)
			response.WriteError(w, http.StatusInternalServerError, statusErr.Error())
			return
		}
	}

	if errors.Is(err, gateway.ErrNoSummary) {
		response.WriteError(w, http.StatusInternalServerError, "No summary generated from AI")
		return
	}

	log.Printf("Error in analyze handler: %v", err)
	response.WriteError(w, http.StatusInternalServerError, err.Error())
}
