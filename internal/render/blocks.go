package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

type blockKind int

const (
	paragraphBlock blockKind = iota
	headingBlock
	listItemBlock
	ruleBlock
	quoteBlock
	codeBlock
)

// block is one layout unit of a reading
type block struct {
	kind   blockKind
	level  int    // heading level 1-6
	depth  int    // list nesting, 0 for top-level items
	marker string // list marker as displayed, e.g. "•" or "3."; empty for continuation paragraphs
	text   string
}

// parseBlocks parses Markdown with the same parser as the HTML output and
// flattens the block tree into layout blocks with inline markup removed
func parseBlocks(markdown string) []block {
	source := []byte(strings.ReplaceAll(markdown, "\r\n", "\n"))
	doc := md.Parser().Parse(text.NewReader(source))

	w := blockWalker{source: source}
	w.children(doc, blockContext{})
	return w.blocks
}

type blockContext struct {
	depth  int  // list nesting of the enclosing item
	inList bool // inside a list item
	quoted bool // inside a blockquote
}

type blockWalker struct {
	source []byte
	blocks []block
}

func (w *blockWalker) children(parent ast.Node, ctx blockContext) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		w.node(n, ctx)
	}
}

func (w *blockWalker) node(n ast.Node, ctx blockContext) {
	switch n := n.(type) {
	case *ast.Heading:
		w.add(block{kind: headingBlock, level: n.Level, text: w.inline(n)})
	case *ast.Paragraph, *ast.TextBlock:
		w.paragraph(w.inline(n), ctx)
	case *ast.ThematicBreak:
		w.add(block{kind: ruleBlock})
	case *ast.Blockquote:
		ctx.quoted = true
		w.children(n, ctx)
	case *ast.List:
		w.list(n, ctx)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.add(block{kind: codeBlock, text: w.lines(n)})
	case *ast.HTMLBlock:
		// raw HTML is not rendered in the HTML output either
	case *east.Table:
		w.table(n)
	default:
		w.children(n, ctx)
	}
}

func (w *blockWalker) paragraph(s string, ctx blockContext) {
	switch {
	case s == "":
	case ctx.quoted:
		w.add(block{kind: quoteBlock, text: s})
	case ctx.inList:
		w.add(block{kind: listItemBlock, depth: ctx.depth, text: s})
	default:
		w.add(block{kind: paragraphBlock, text: s})
	}
}

func (w *blockWalker) list(list *ast.List, ctx blockContext) {
	depth := 0
	if ctx.inList {
		depth = ctx.depth + 1
	}

	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + "."
			number++
		}

		itemCtx := blockContext{depth: depth, inList: true, quoted: ctx.quoted}
		first := item.FirstChild()
		switch first.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			w.add(block{kind: listItemBlock, depth: depth, marker: marker, text: w.inline(first)})
			first = first.NextSibling()
		default:
			w.add(block{kind: listItemBlock, depth: depth, marker: marker})
		}
		for n := first; n != nil; n = n.NextSibling() {
			w.node(n, itemCtx)
		}
	}
}

// table writes each row as a paragraph of cells separated by " | "
func (w *blockWalker) table(table *east.Table) {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, w.inline(cell))
		}
		w.add(block{kind: paragraphBlock, text: strings.Join(cells, " | ")})
	}
}

func (w *blockWalker) lines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(w.source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (w *blockWalker) add(b block) {
	w.blocks = append(w.blocks, b)
}

// inline returns the plain text of n's inline content. Link destinations
// follow their text in parentheses.
func (w *blockWalker) inline(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := node.(type) {
		case *ast.Text:
			if entering {
				sb.Write(node.Value(w.source))
				switch {
				case node.HardLineBreak():
					sb.WriteByte('\n')
				case node.SoftLineBreak():
					sb.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				sb.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				sb.Write(node.URL(w.source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			if !entering && len(node.Destination) > 0 {
				sb.WriteString(" (" + string(node.Destination) + ")")
			}
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *east.TaskCheckBox:
			if entering {
				if node.IsChecked {
					sb.WriteString("[x] ")
				} else {
					sb.WriteString("[ ] ")
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
