// Package render serializes an edited document tree back to HTML.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
)

// HTML renders the document body as an HTML fragment. Text runs are split at
// link-span boundaries so every linked range becomes an anchor.
func HTML(d *doc.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(d.Title))
	for _, el := range d.Body.Children {
		renderBlock(&b, el)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, el doc.Element) {
	switch node := el.(type) {
	case *doc.Paragraph:
		tag := "p"
		if node.Heading > 0 && node.Heading <= 6 {
			// Document headings shift down one level; h1 is the title.
			tag = fmt.Sprintf("h%d", min(node.Heading+1, 6))
		}
		fmt.Fprintf(b, "<%s>", tag)
		for _, c := range node.Children {
			renderInline(b, c)
		}
		fmt.Fprintf(b, "</%s>\n", tag)
	case *doc.List:
		tag := "ul"
		if node.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(b, "<%s>\n", tag)
		for _, item := range node.Items {
			b.WriteString("<li>")
			for _, c := range item.Children {
				renderInline(b, c)
			}
			b.WriteString("</li>\n")
		}
		fmt.Fprintf(b, "</%s>\n", tag)
	}
}

func renderInline(b *strings.Builder, el doc.Element) {
	switch node := el.(type) {
	case *doc.Text:
		renderRun(b, node)
	case *doc.Image:
		img := fmt.Sprintf(`<img src="%s" alt="%s">`,
			html.EscapeString(node.Source), html.EscapeString(node.Alt))
		if node.LinkURL != "" {
			fmt.Fprintf(b, `<a href="%s">%s</a>`, html.EscapeString(node.LinkURL), img)
			return
		}
		b.WriteString(img)
	}
}

// renderRun emits the run's text, wrapping each link span in an anchor.
// Spans are non-overlapping and ordered, so a single pass suffices.
func renderRun(b *strings.Builder, t *doc.Text) {
	runes := []rune(t.Text())
	pos := 0
	for _, sp := range t.Links() {
		if sp.Start > pos {
			b.WriteString(html.EscapeString(string(runes[pos:sp.Start])))
		}
		end := sp.End
		if end >= len(runes) {
			end = len(runes) - 1
		}
		fmt.Fprintf(b, `<a href="%s">%s</a>`,
			html.EscapeString(sp.URL), html.EscapeString(string(runes[sp.Start:end+1])))
		pos = end + 1
	}
	if pos < len(runes) {
		b.WriteString(html.EscapeString(string(runes[pos:])))
	}
}
