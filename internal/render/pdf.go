package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"cosmicmatch/internal/config"
)

const (
	fontFamily      = "Helvetica"
	monoFamily      = "Courier"
	defaultFontSize = 11.0
	pageMargin      = 20.0 // mm
	ptToMM          = 0.3528
	lineSpacing     = 1.45
	listIndent      = 4.0
	markerWidth     = 7.0
	quoteIndent     = 6.0
)

var pageSizes = map[string]string{
	"a4":     "A4",
	"a5":     "A5",
	"letter": "Letter",
	"legal":  "Legal",
}

type pdfRenderer struct {
	pageSize string
	fontSize float64
	author   string
}

func newPDFRenderer(cfg config.ReportConfig) *pdfRenderer {
	size, ok := pageSizes[strings.ToLower(cfg.PageSize)]
	if !ok {
		size = "A4"
	}
	fontSize := cfg.FontSize
	if fontSize < 6 || fontSize > 24 {
		fontSize = defaultFontSize
	}
	return &pdfRenderer{
		pageSize: size,
		fontSize: fontSize,
		author:   cfg.Author,
	}
}

func (p *pdfRenderer) render(doc Document) ([]byte, error) {
	pdf := p.layout(doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// layout draws the document; errors are accumulated inside the returned
// Fpdf and surface from Output
func (p *pdfRenderer) layout(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", p.pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	lineHeight := p.fontSize * ptToMM * lineSpacing

	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(p.author, true)
	pdf.SetCreator("cosmicmatch", true)
	if !doc.Created.IsZero() {
		pdf.SetCreationDate(doc.Created)
		pdf.SetModificationDate(doc.Created)
	}

	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin + 5)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", p.fontSize+9)
	pdf.MultiCell(0, (p.fontSize+9)*ptToMM*1.3, tr(doc.Title), "", "C", false)
	if doc.Subtitle != "" {
		pdf.SetFont(fontFamily, "I", p.fontSize)
		pdf.MultiCell(0, lineHeight, tr(doc.Subtitle), "", "C", false)
	}
	pdf.Ln(lineHeight)

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()

	for _, b := range parseBlocks(doc.Body) {
		switch b.kind {
		case headingBlock:
			size := p.headingSize(b.level)
			pdf.Ln(lineHeight / 2)
			pdf.SetFont(fontFamily, "B", size)
			pdf.MultiCell(0, size*ptToMM*1.3, tr(b.text), "", "L", false)
			pdf.Ln(1)
		case listItemBlock:
			pdf.SetFont(fontFamily, "", p.fontSize)
			pdf.SetX(left + listIndent + float64(b.depth)*(listIndent+markerWidth))
			pdf.CellFormat(markerWidth, lineHeight, tr(b.marker), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "L", false)
		case quoteBlock:
			pdf.SetFont(fontFamily, "I", p.fontSize)
			pdf.SetTextColor(90, 90, 90)
			pdf.SetLeftMargin(left + quoteIndent)
			pdf.SetX(left + quoteIndent)
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "L", false)
			pdf.SetLeftMargin(left)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(lineHeight / 2)
		case codeBlock:
			pdf.SetFont(monoFamily, "", p.fontSize-1)
			pdf.MultiCell(0, (p.fontSize-1)*ptToMM*lineSpacing, tr(b.text), "", "L", false)
			pdf.Ln(lineHeight / 2)
		case ruleBlock:
			pdf.Ln(lineHeight / 2)
			y := pdf.GetY()
			pdf.SetDrawColor(180, 180, 180)
			pdf.Line(left, y, pageWidth-right, y)
			pdf.Ln(lineHeight / 2)
		default:
			pdf.SetFont(fontFamily, "", p.fontSize)
			pdf.MultiCell(0, lineHeight, tr(b.text), "", "J", false)
			pdf.Ln(lineHeight / 2)
		}
	}

	return pdf
}

func (p *pdfRenderer) headingSize(level int) float64 {
	switch level {
	case 1:
		return p.fontSize + 6
	case 2:
		return p.fontSize + 3
	case 3:
		return p.fontSize + 1
	default:
		return p.fontSize
	}
}
