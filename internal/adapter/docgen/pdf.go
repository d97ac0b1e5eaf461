package docgen

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF renders the answer as an A4 PDF document.
func (r *Renderer) RenderPDF(question, answer string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.MultiCell(0, 7, tr(r.Title), "", "L", false)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr("Generated: "+generatedAt()), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, "ORIGINAL QUERY", "", "L", false)
	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%q", question)), "1", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, "AI RESPONSE", "", "L", false)
	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(0, 5, tr(noteLine), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(answer), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, tr(disclaimer), "T", "L", false)
	pdf.MultiCell(0, 5, tr(copyrightLine), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
