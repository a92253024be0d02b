// Package render converts tear-sheet text into downloadable documents.
package render

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/rotisserie/eris"
)

// DocxContentType is the MIME type of rendered Word documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Renderer turns free text into document bytes plus a content type.
type Renderer interface {
	Render(text string) ([]byte, string, error)
}

// lineKind classifies a tear-sheet text line for document formatting.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineBullet
	lineParagraph
)

// classifyLine maps a raw line onto its document role: a line wrapped in
// bold markers becomes a heading, a bullet-marker line becomes a list item,
// everything else a plain paragraph. Returns the cleaned text.
func classifyLine(raw string) (lineKind, string) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return lineBlank, ""
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
		return lineHeading, strings.TrimSpace(strings.Trim(line, "*"))
	case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
		return lineBullet, strings.TrimSpace(strings.TrimLeft(line, "-•"))
	default:
		return lineParagraph, line
	}
}

// Docx renders tear sheets as Word documents.
type Docx struct{}

func (Docx) Render(text string) ([]byte, string, error) {
	doc := docx.New().WithDefaultTheme()

	for _, raw := range strings.Split(text, "\n") {
		kind, line := classifyLine(raw)
		switch kind {
		case lineBlank:
			continue
		case lineHeading:
			doc.AddParagraph().AddText(line).Size("28").Bold()
		case lineBullet:
			doc.AddParagraph().AddText("• " + line).Size("22")
		default:
			doc.AddParagraph().AddText(line).Size("22")
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, "", eris.Wrap(err, "render: write docx")
	}
	return buf.Bytes(), DocxContentType, nil
}
