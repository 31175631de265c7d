package analyze

import "fmt"

// FailureKind classifies why an analysis attempt produced no summary.
type FailureKind int

const (
	RateLimited FailureKind = iota
	CreditsExhausted
	UpstreamError
	EmptySummary
	NetworkError
)

// Failure is a typed analysis error carrying a user-facing message.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Outcome is the single result of one analysis attempt: either a summary or
// a Failure, never both.
type Outcome struct {
	Summary string
	Err     *Failure
}

// Success reports whether the attempt produced a summary.
func (o Outcome) Success() bool {
	return o.Err == nil
}

func rateLimited() *Failure {
	return &Failure{Kind: RateLimited, Message: "Rate limit exceeded. Please try again later."}
}

func creditsExhausted() *Failure {
	return &Failure{Kind: CreditsExhausted, Message: "AI credits exhausted. Please add funds to continue."}
}

func upstreamError(status int, detail string) *Failure {
	msg := fmt.Sprintf("AI gateway error: %d", status)
	if detail != "" {
		msg = detail
	}
	return &Failure{Kind: UpstreamError, Message: msg}
}

func emptySummary() *Failure {
	return &Failure{Kind: EmptySummary, Message: "No summary generated from AI"}
}

func networkError(err error) *Failure {
	return &Failure{Kind: NetworkError, Message: fmt.Sprintf("network error: %v", err)}
}
