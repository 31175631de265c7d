// Package export renders a summary into a downloadable artifact.
package export

import (
	"fmt"
	"strings"
)

// ReportTitle heads every exported artifact.
const ReportTitle = "Research4Me - Analysis Report"

// Artifact is the final downloadable byte sequence plus its mime type and
// filename. Built on demand at download time; never persisted.
type Artifact struct {
	Bytes    []byte
	MimeType string
	Filename string
}

// Exporter renders summaries into artifacts. DocxExtension controls the
// extension of the word-processor export, which is plain text either way:
// true DOCX encoding is out of scope, and the artifact content does not
// change with the extension.
type Exporter struct {
	DocxExtension string
}

// NewExporter returns an exporter with the default docx extension.
func NewExporter() *Exporter {
	return &Exporter{DocxExtension: "docx"}
}

// Export renders summaryText into the requested format. The artifact is
// derived deterministically from (summaryText, format).
func (e *Exporter) Export(summaryText, format string) (Artifact, error) {
	switch format {
	case "tex":
		return Artifact{
			Bytes:    []byte(renderLaTeX(summaryText)),
			MimeType: "application/x-tex",
			Filename: "research4me-summary.tex",
		}, nil
	case "pdf":
		data, err := renderPDF(summaryText)
		if err != nil {
			return Artifact{}, fmt.Errorf("rendering pdf: %w", err)
		}
		return Artifact{
			Bytes:    data,
			MimeType: "application/pdf",
			Filename: "research4me-summary.pdf",
		}, nil
	case "docx":
		content := ReportTitle + "\n\n" + summaryText
		return Artifact{
			Bytes:    []byte(content),
			MimeType: "text/plain",
			Filename: "research4me-summary." + e.DocxExtension,
		}, nil
	default:
		return Artifact{}, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WordCount is the whitespace-delimited token count of the summary.
// Display-only; never affects exported bytes.
func WordCount(summaryText string) int {
	return len(strings.Fields(summaryText))
}

// PageEstimate is the ceiling of word count over 300 words per page.
// Display-only; never affects exported bytes.
func PageEstimate(summaryText string) int {
	return (WordCount(summaryText) + 299) / 300
}
