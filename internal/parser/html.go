package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Anchors become link spans, images become
// image leaves, lists keep their item structure.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := doc.New(titleFromFilename(filename))
	if title := findTitle(root); title != "" {
		d.Title = title
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				para := &doc.Paragraph{Heading: level}
				appendHTMLInlines(para, n)
				if para.ChildCount() > 0 {
					d.Body.Append(para)
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "blockquote", "td":
				para := &doc.Paragraph{}
				appendHTMLInlines(para, n)
				if para.ChildCount() > 0 {
					d.Body.Append(para)
				}
				return
			case "ul", "ol":
				list := &doc.List{Ordered: n.Data == "ol"}
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type != html.ElementNode || li.Data != "li" {
						continue
					}
					itemPara := &doc.Paragraph{}
					appendHTMLInlines(itemPara, li)
					list.Items = append(list.Items, itemPara)
				}
				if len(list.Items) > 0 {
					d.Body.Append(list)
				}
				return
			case "img":
				para := &doc.Paragraph{}
				para.Append(&doc.Image{Source: attrValue(n, "src"), Alt: attrValue(n, "alt")})
				d.Body.Append(para)
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	return d, nil
}

// appendHTMLInlines flattens the inline content under n into runs on para.
func appendHTMLInlines(para *doc.Paragraph, n *html.Node) {
	var plain strings.Builder
	flush := func() {
		// Collapse runs of whitespace but keep single spaces at the edges so
		// text stays separated from adjacent link runs.
		if t := collapseSpace(plain.String()); strings.TrimSpace(t) != "" {
			para.Append(doc.NewText(t))
		}
		plain.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				plain.WriteString(c.Data)
			case c.Type == html.ElementNode && c.Data == "a":
				flush()
				run := doc.NewText(strings.TrimSpace(collapseSpace(textContent(c))))
				if href := attrValue(c, "href"); href != "" {
					run.SetLinkURL(href)
				}
				para.Append(run)
			case c.Type == html.ElementNode && c.Data == "img":
				flush()
				para.Append(&doc.Image{Source: attrValue(c, "src"), Alt: attrValue(c, "alt")})
			case c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style"):
				// skip
			default:
				walk(c)
			}
		}
	}
	walk(n)
	flush()
}

var spaceRe = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return spaceRe.ReplaceAllString(s, " ")
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return strings.TrimSpace(textContent(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
