package export

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry for the PDF export. Pagination is explicit: lines are
// wrapped to the column width, the vertical offset advances per line, and a
// new page starts once the offset passes the threshold.
const (
	pdfColumnWidth   = 180.0 // mm, usable text column on A4 with margins
	pdfLineHeight    = 5.0   // mm per body line
	pdfTopOffset     = 20.0  // mm, first baseline on each page
	pdfPageThreshold = 277.0 // mm, offset past which a new page starts
	pdfLeftMargin    = 15.0  // mm
)

// renderPDF produces the paginated document: a fixed title line, then the
// raw summary wrapped to the column width. The summary text is rendered
// verbatim; no Markdown interpretation happens on this path.
func renderPDF(summaryText string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := pdfTopOffset
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pdfLeftMargin, y, ReportTitle)
	y += 2 * pdfLineHeight

	pdf.SetFont("Helvetica", "", 10)
	for _, paragraph := range strings.Split(summaryText, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			y += pdfLineHeight
			continue
		}
		for _, line := range pdf.SplitText(paragraph, pdfColumnWidth) {
			if y > pdfPageThreshold {
				pdf.AddPage()
				y = pdfTopOffset
			}
			pdf.Text(pdfLeftMargin, y, line)
			y += pdfLineHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
