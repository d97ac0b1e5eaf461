package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// RenderDOCX renders the answer as a Word document.
func (r *Renderer) RenderDOCX(question, answer string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(r.Title).Size("28").Bold()
	doc.AddParagraph().AddText("Generated: " + generatedAt())
	doc.AddParagraph()

	doc.AddParagraph().AddText("ORIGINAL QUERY").Bold()
	doc.AddParagraph().AddText(divider)
	doc.AddParagraph().AddText(fmt.Sprintf("%q", question)).Italic()
	doc.AddParagraph().AddText(divider)

	doc.AddParagraph().AddText("AI RESPONSE").Bold()
	doc.AddParagraph().AddText(noteLine).Bold()
	for _, line := range strings.Split(answer, "\n") {
		doc.AddParagraph().AddText(line)
	}

	doc.AddParagraph()
	doc.AddParagraph().AddText(divider)
	doc.AddParagraph().AddText(disclaimer)
	doc.AddParagraph().AddText(copyrightLine)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}
