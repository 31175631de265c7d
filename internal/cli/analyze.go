package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/research4me/paper-analyzer/internal/aggregate"
	"github.com/research4me/paper-analyzer/internal/analyze"
	"github.com/research4me/paper-analyzer/internal/export"
	"github.com/research4me/paper-analyzer/internal/extract"
	"github.com/research4me/paper-analyzer/internal/session"
)

// Flag variables.
var (
	flagURL       string
	flagLength    string
	flagFocus     []string
	flagFormat    string
	flagOutputDir string
	flagEndpoint  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]...",
	Short: "Analyze papers and export the summary",
	Long: `Analyze reads the given files (PDF, DOC, DOCX, TXT), optionally adds a
paper URL reference, requests an AI summary, and writes the exported
artifact to disk.

Examples:
  research4me analyze paper.txt
  research4me analyze a.pdf b.txt --format tex
  research4me analyze --url https://arxiv.org/abs/2405.00001 --length long`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&flagURL, "url", "", "Paper URL reference (not fetched; passed to the analysis)")
	analyzeCmd.Flags().StringVar(&flagLength, "length", "", "Summary length: short, medium, long, comprehensive")
	analyzeCmd.Flags().StringSliceVar(&flagFocus, "focus", nil, "Focus areas (default: key-findings, methodology)")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: pdf, docx, tex")
	analyzeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	analyzeCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Analyze endpoint URL (default: $ANALYZE_URL, then "+defaultEndpoint+")")
}

const defaultEndpoint = "http://localhost:8080/analyze"

// resolveEndpoint picks the analyze endpoint: the --endpoint flag wins,
// then the ANALYZE_URL environment variable, then the local default.
func resolveEndpoint(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("ANALYZE_URL"); env != "" {
		return env
	}
	return defaultEndpoint
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && flagURL == "" {
		return fmt.Errorf("no input provided: pass at least one file or --url")
	}

	sess := session.New(analyze.NewClient(resolveEndpoint(flagEndpoint)))
	applyCustomization(sess.Customization())
	sess.SetPaperURL(flagURL)

	if len(args) > 0 {
		uploads, err := readFiles(args)
		if err != nil {
			return err
		}
		if accepted := sess.AddFiles(uploads...); accepted == 0 && flagURL == "" {
			return fmt.Errorf("invalid file type: only PDF, Word, and text documents are supported")
		}
	}

	fmt.Fprintf(os.Stdout, "Analyzing %d file(s)...\n", len(sess.Files()))

	if err := sess.Analyze(context.Background()); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s", verr.Message)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	summary := sess.Summary()
	fmt.Fprintf(os.Stdout, "Analysis complete: %d words, ~%d page(s)\n",
		export.WordCount(summary), export.PageEstimate(summary))

	artifact, err := sess.Export()
	if err != nil {
		return err
	}

	path := filepath.Join(flagOutputDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Bytes, 0o644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// applyCustomization overrides the session defaults with whatever flags
// were set.
func applyCustomization(c *analyze.Customization) {
	if flagLength != "" {
		c.SummaryLength = flagLength
	}
	if flagFocus != nil {
		c.FocusAreas = flagFocus
	}
	if flagFormat != "" {
		c.OutputFormat = flagFormat
	}
}

// readFiles opens and extracts every path. A file that fails to open or
// read is dropped from the batch, matching the per-file best-effort rule.
func readFiles(paths []string) ([]aggregate.UploadedContent, error) {
	files := make([]extract.File, 0, len(paths))
	opened := make([]*os.File, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Skipping %s: %v\n", p, err)
			continue
		}
		opened = append(opened, f)
		files = append(files, extract.File{
			Name:     filepath.Base(p),
			MimeType: mimeForPath(p),
			Reader:   f,
		})
	}

	results := extract.All(files)
	for _, f := range opened {
		f.Close()
	}
	uploads := make([]aggregate.UploadedContent, len(results))
	for i, r := range results {
		uploads[i] = aggregate.UploadedContent{
			Name:      r.Name,
			SizeBytes: r.SizeBytes,
			MimeType:  r.MimeType,
			Text:      r.Text,
		}
	}
	return uploads, nil
}

// mimeForPath maps a file extension onto the upload mime vocabulary.
func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MimePDF
	case ".docx":
		return extract.MimeDocx
	case ".doc":
		return extract.MimeDoc
	case ".txt":
		return extract.MimeText
	default:
		return "application/octet-stream"
	}
}
