package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Inline links become
// link spans on the text runs so they survive a round trip through the
// editor.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	d := doc.New(titleFromFilename(filename))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			para := &doc.Paragraph{Heading: node.Level}
			appendInlines(para, node, src)
			d.Body.Append(para)

		case *ast.Paragraph:
			para := &doc.Paragraph{}
			appendInlines(para, node, src)
			if para.ChildCount() > 0 {
				d.Body.Append(para)
			}

		case *ast.List:
			list := &doc.List{Ordered: node.IsOrdered()}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				itemPara := &doc.Paragraph{}
				for c := item.FirstChild(); c != nil; c = c.NextSibling() {
					appendInlines(itemPara, c, src)
				}
				list.Items = append(list.Items, itemPara)
			}
			if len(list.Items) > 0 {
				d.Body.Append(list)
			}

		default:
			if t := blockText(n, src); t != "" {
				para := &doc.Paragraph{}
				para.Append(doc.NewText(t))
				d.Body.Append(para)
			}
		}
	}

	return d, nil
}

// appendInlines flattens the inline content of n into runs on para: plain
// text accumulates into one run, links become their own runs carrying a link
// span, images become image leaves.
func appendInlines(para *doc.Paragraph, n ast.Node, src []byte) {
	var plain bytes.Buffer
	flush := func() {
		if plain.Len() > 0 {
			para.Append(doc.NewText(plain.String()))
			plain.Reset()
		}
	}

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Text:
				plain.Write(node.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					plain.WriteByte(' ')
				}
			case *ast.Link:
				flush()
				run := doc.NewText(inlineText(node, src))
				run.SetLinkURL(string(node.Destination))
				para.Append(run)
			case *ast.AutoLink:
				flush()
				u := string(node.URL(src))
				run := doc.NewText(u)
				run.SetLinkURL(u)
				para.Append(run)
			case *ast.Image:
				flush()
				para.Append(&doc.Image{
					Source: string(node.Destination),
					Alt:    inlineText(node, src),
				})
			default:
				walk(c)
			}
		}
	}
	walk(n)
	flush()
}

// inlineText concatenates the plain text beneath an inline node.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
			} else {
				walk(c)
			}
		}
	}
	walk(n)
	return buf.String()
}

// blockText gets the raw text content of a non-paragraph block node, such as
// a code block or blockquote.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		buf.WriteString(blockText(c, src))
	}
	return strings.TrimSpace(buf.String())
}
