// Package render turns a generated Markdown reading into an HTML page and a
// paginated PDF document.
package render

import (
	"time"

	"cosmicmatch/internal/config"
)

// Document is a reading ready to be rendered
type Document struct {
	Title    string
	Subtitle string
	Body     string // Markdown
	Created  time.Time
}

// Renderer produces both output formats for a document
type Renderer struct {
	html *htmlRenderer
	pdf  *pdfRenderer
}

func New(cfg config.ReportConfig) *Renderer {
	return &Renderer{
		html: newHTMLRenderer(),
		pdf:  newPDFRenderer(cfg),
	}
}

// HTML renders doc as a standalone HTML page
func (r *Renderer) HTML(doc Document) ([]byte, error) {
	return r.html.render(doc)
}

// PDF renders doc as a PDF document
func (r *Renderer) PDF(doc Document) ([]byte, error) {
	return r.pdf.render(doc)
}
