// internal/receipt/pdf.go
package receipt

import (
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"agent-intake/internal/form"
)

// Page geometry in millimeters (A4 portrait).
const (
	margin      = 15.0
	topY        = 20.0
	lineAdvance = 7.0
	pageBreakY  = 280.0
	valueOffset = 50.0
)

// Writer renders application receipts into OutputDir.
type Writer struct {
	OutputDir string
}

func NewWriter(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = "."
	}
	return &Writer{OutputDir: outputDir}
}

// Write renders the receipt for s and saves it under the derived file name,
// returning the full path.
func (w *Writer) Write(s *form.State) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	y := topY

	// Centered organization header.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text((pageWidth-pdf.GetStringWidth(OrgName))/2, y, OrgName)
	y += 8
	pdf.SetFontSize(14)
	pdf.Text((pageWidth-pdf.GetStringWidth(DocTitle))/2, y, DocTitle)
	y += 12

	pdf.SetDrawColor(200, 0, 0)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 6

	for _, line := range Lines(s) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(margin, y, line.Label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Text(margin+valueOffset, y, line.Value)
		y += lineAdvance
		if y > pageBreakY {
			pdf.AddPage()
			y = topY
		}
	}

	path := filepath.Join(w.OutputDir, FileName(s))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
