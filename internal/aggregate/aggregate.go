// Package aggregate merges uploaded file texts and an optional URL reference
// into the single content string sent for analysis.
package aggregate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/research4me/paper-analyzer/internal/extract"
)

// Separator is the visible boundary between texts of different files.
const Separator = "\n\n---\n\n"

// ErrNoInput is returned when there is nothing to analyze: no valid files
// and no URL. Callers must reject the analyze action before any request is
// built.
var ErrNoInput = errors.New("no input provided: upload a file or enter a paper URL")

// UploadedContent is one successfully read file in the working set.
// Immutable once created; removed only on explicit user action or reset.
type UploadedContent struct {
	Name      string
	SizeBytes int
	MimeType  string
	Text      string
}

// allowedTypes is the mime allow-list for uploads. Files outside it are
// silently dropped from the batch.
var allowedTypes = map[string]bool{
	extract.MimePDF:  true,
	extract.MimeDocx: true,
	extract.MimeDoc:  true,
	extract.MimeText: true,
}

// Allowed reports whether a mime type is accepted for upload.
func Allowed(mimeType string) bool {
	return allowedTypes[mimeType]
}

// Filter drops files whose mime type is not on the allow-list. A zero-count
// result for a non-empty input is how callers detect an all-invalid batch.
func Filter(files []UploadedContent) []UploadedContent {
	valid := make([]UploadedContent, 0, len(files))
	for _, f := range files {
		if Allowed(f.MimeType) {
			valid = append(valid, f)
		}
	}
	return valid
}

// Content builds the aggregated content string: file texts joined with the
// separator, then the URL reference clause if a URL was given. The URL is
// never fetched; the clause tells the model what the reference is.
func Content(files []UploadedContent, paperURL string) (string, error) {
	if len(files) == 0 && paperURL == "" {
		return "", ErrNoInput
	}

	texts := make([]string, len(files))
	for i, f := range files {
		texts[i] = f.Text
	}
	content := strings.Join(texts, Separator)

	if paperURL != "" {
		content += fmt.Sprintf("\n\n[Research paper from URL: %s]\nPlease analyze based on this academic source.", paperURL)
	}

	return content, nil
}
