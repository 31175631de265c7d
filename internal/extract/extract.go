// Package extract turns uploaded files into best-effort text payloads.
//
// Binary document formats (PDF, Word) are not parsed for real: when a file of
// one of those types yields no readable text, extraction still succeeds and
// returns a placeholder that names the file. This is a known fidelity
// limitation of the product, not a failure mode.
package extract

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc  = "application/msword"
	MimeText = "text/plain"
)

// File carries the metadata the extractor needs alongside the raw bytes.
type File struct {
	Name     string
	MimeType string
	Reader   io.Reader
}

// Text reads a single file and returns its best-effort text content.
// A failing read is the only fatal condition.
func Text(f File) (string, error) {
	data, err := io.ReadAll(f.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", f.Name, err)
	}
	return textFromBytes(f, data), nil
}

// textFromBytes decodes raw bytes, falling back to the type-specific
// placeholder when the payload carries no readable text.
func textFromBytes(f File, data []byte) string {
	text := string(data)
	if readable(text) {
		return text
	}

	switch f.MimeType {
	case MimePDF:
		return fmt.Sprintf("[PDF Content from %s]", f.Name)
	default:
		return fmt.Sprintf("[Document content from %s]", f.Name)
	}
}

// Result pairs an extracted text with the file metadata it came from.
type Result struct {
	Name      string
	SizeBytes int
	MimeType  string
	Text      string
}

// All extracts every file concurrently and joins on completion. Files whose
// read fails are dropped from the result set; the failure is logged rather
// than surfaced, so one bad file never aborts the batch. Result order
// follows input order regardless of completion order.
func All(files []File) []Result {
	type indexed struct {
		index  int
		result Result
		err    error
	}

	ch := make(chan indexed, len(files))
	for i, f := range files {
		go func(index int, file File) {
			data, err := io.ReadAll(file.Reader)
			if err != nil {
				ch <- indexed{index: index, err: fmt.Errorf("failed to read file %s: %w", file.Name, err)}
				return
			}
			ch <- indexed{
				index: index,
				result: Result{
					Name:      file.Name,
					SizeBytes: len(data),
					MimeType:  file.MimeType,
					Text:      textFromBytes(file, data),
				},
			}
		}(i, f)
	}

	ordered := make([]*Result, len(files))
	for range files {
		res := <-ch
		if res.err != nil {
			log.Printf("Error reading file %s: %v", files[res.index].Name, res.err)
			continue
		}
		r := res.result
		ordered[res.index] = &r
	}

	results := make([]Result, 0, len(files))
	for _, r := range ordered {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// readable reports whether decoded bytes look like usable text: valid UTF-8
// with at least some non-control content once trimmed.
func readable(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if !utf8.ValidString(s) {
		return false
	}
	printable := 0
	total := 0
	for _, r := range s {
		total++
		if r == '\n' || r == '\r' || r == '\t' || r >= ' ' {
			printable++
		}
	}
	// Mostly control characters means a binary payload slipped through.
	return printable*10 >= total*9
}
