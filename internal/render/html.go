package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #222; }
header { border-bottom: 1px solid #ccc; margin-bottom: 1.5rem; }
header p { color: #666; font-style: italic; }
footer { margin-top: 3rem; font-size: 0.8rem; color: #888; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{- if .Subtitle}}
<p>{{.Subtitle}}</p>
{{- end}}
</header>
<main>
{{.Content}}
</main>
<footer>Generated {{.Created}}</footer>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// md parses readings for both outputs. Raw HTML in model output is not
// rendered (goldmark's default).
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

type htmlRenderer struct{}

func newHTMLRenderer() *htmlRenderer {
	return &htmlRenderer{}
}

func (h *htmlRenderer) render(doc Document) ([]byte, error) {
	var content bytes.Buffer
	if err := md.Convert([]byte(doc.Body), &content); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title    string
		Subtitle string
		Content  template.HTML
		Created  string
	}{
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Content:  template.HTML(content.String()),
		Created:  doc.Created.UTC().Format("2 January 2006 15:04 MST"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return out.Bytes(), nil
}
