package output

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/trallarn/math-stencil/internal/grid"
)

// PDF page geometry in millimetres (A4 portrait).
const (
	pdfPageWidth = 210.0
	pdfMargin    = 10.0
	pdfRowHeight = 9.0
)

// WritePDF renders the worksheet as an A4 document. Cells use a monospace
// font so the padded problems line up like the raw text output.
func WritePDF(w io.Writer, h Header, g grid.Grid) error {
	return buildPDF(h, g).Output(w)
}

// buildPDF lays out the document. Text goes through a cp1252 translator
// because the core fonts are not UTF-8.
func buildPDF(h Header, g grid.Grid) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(h.Title, true)
	pdf.SetCreationDate(h.Date)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(h.Title), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, h.DateString(), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	if cols := g.Cols(); cols > 0 {
		colWidth := (pdfPageWidth - 2*pdfMargin) / float64(cols)
		pdf.SetFont("Courier", "", 11)
		for _, row := range g {
			for _, cell := range row {
				pdf.CellFormat(colWidth, pdfRowHeight, tr(string(cell)), "", 0, "L", false, 0, "")
			}
			pdf.Ln(pdfRowHeight)
		}
	}
	return pdf
}
