// Package session orchestrates one analysis session: input collection,
// the single in-flight analysis, and the results phase.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/research4me/paper-analyzer/internal/aggregate"
	"github.com/research4me/paper-analyzer/internal/analyze"
	"github.com/research4me/paper-analyzer/internal/export"
)

// Phase is the session state. Idle collects input, Processing covers the
// one outstanding analysis call, Results shows a summary until reset.
type Phase int

const (
	Idle Phase = iota
	Processing
	Results
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Results:
		return "results"
	default:
		return "unknown"
	}
}

// ValidationError covers client-side rejections that never reach the
// network: empty input, invalid file types.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrBusy is returned when an analysis is already in flight. The state
// machine allows at most one Processing instance.
var ErrBusy = errors.New("analysis already in progress")

// Analyzer performs one analysis attempt. *analyze.Client satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, req analyze.Request) analyze.Outcome
}

// Session holds all state for one user session. Not safe for concurrent
// use; the flow is single-threaded and the phase field guards re-entry.
type Session struct {
	phase         Phase
	files         []aggregate.UploadedContent
	paperURL      string
	customization analyze.Customization
	summary       string

	client   Analyzer
	exporter *export.Exporter
}

// New creates an idle session with default customization.
func New(client Analyzer) *Session {
	return &Session{
		phase:         Idle,
		customization: analyze.DefaultCustomization(),
		client:        client,
		exporter:      export.NewExporter(),
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Summary returns the analysis result; empty outside the Results phase.
func (s *Session) Summary() string {
	return s.summary
}

// Files returns the current working set of uploaded content.
func (s *Session) Files() []aggregate.UploadedContent {
	return s.files
}

// PaperURL returns the URL reference, if any.
func (s *Session) PaperURL() string {
	return s.paperURL
}

// Customization returns a pointer so UI actions can mutate it in place.
func (s *Session) Customization() *analyze.Customization {
	return &s.customization
}

// AddFiles filters the batch against the mime allow-list and appends the
// survivors to the working set. Returns how many were accepted; zero for a
// non-empty batch means every file had an invalid type.
func (s *Session) AddFiles(files ...aggregate.UploadedContent) int {
	valid := aggregate.Filter(files)
	s.files = append(s.files, valid...)
	return len(valid)
}

// RemoveFile removes the file at index from the working set.
func (s *Session) RemoveFile(index int) {
	if index < 0 || index >= len(s.files) {
		return
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
}

// SetPaperURL records the URL reference.
func (s *Session) SetPaperURL(url string) {
	s.paperURL = url
}

// Analyze runs one analysis attempt. The aggregator precondition gates the
// Idle→Processing transition: with no valid files and no URL the session
// stays Idle and a ValidationError is returned. On failure the session
// returns to Idle with the outcome's typed error; on success it enters
// Results. No retries, no second concurrent attempt.
func (s *Session) Analyze(ctx context.Context) error {
	switch s.phase {
	case Processing:
		return ErrBusy
	case Results:
		return fmt.Errorf("session already has results; reset before analyzing again")
	}

	content, err := aggregate.Content(s.files, s.paperURL)
	if err != nil {
		return &ValidationError{Message: "Please upload a file or enter a paper URL."}
	}

	req := analyze.NewRequest(content, s.customization)
	s.phase = Processing

	outcome := s.client.Analyze(ctx, req)
	if !outcome.Success() {
		s.phase = Idle
		return outcome.Err
	}

	s.summary = outcome.Summary
	s.phase = Results
	return nil
}

// Export renders the current summary in the selected output format. Only
// valid in the Results phase.
func (s *Session) Export() (export.Artifact, error) {
	if s.phase != Results {
		return export.Artifact{}, fmt.Errorf("no summary to export")
	}
	return s.exporter.Export(s.summary, s.customization.OutputFormat)
}

// Reset is the Results→Idle back transition: clears the file list, URL and
// summary so stale results can never be exported against new input.
// Customization is retained.
func (s *Session) Reset() {
	s.files = nil
	s.paperURL = ""
	s.summary = ""
	s.phase = Idle
}
