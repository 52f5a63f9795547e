package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclink/internal/doc"
)

func TestMarkdownParser_BlocksAndHeadings(t *testing.T) {
	input := `# Title

Intro text.

## Section

Section content.
`
	p := &MarkdownParser{}
	d, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Title != "doc" {
		t.Errorf("title = %q, want %q", d.Title, "doc")
	}
	if d.Body.ChildCount() != 4 {
		t.Fatalf("expected 4 blocks, got %d", d.Body.ChildCount())
	}

	h1, ok := d.Body.Child(0).(*doc.Paragraph)
	if !ok || h1.Heading != 1 {
		t.Fatalf("block 0 should be an h1 paragraph, got %#v", d.Body.Child(0))
	}
	if h1.Text() != "Title" {
		t.Errorf("h1 text = %q", h1.Text())
	}

	intro := d.Body.Child(1).(*doc.Paragraph)
	if intro.Heading != 0 || intro.Text() != "Intro text." {
		t.Errorf("block 1 = heading %d, text %q", intro.Heading, intro.Text())
	}

	h2 := d.Body.Child(2).(*doc.Paragraph)
	if h2.Heading != 2 || h2.Text() != "Section" {
		t.Errorf("block 2 = heading %d, text %q", h2.Heading, h2.Text())
	}
}

func TestMarkdownParser_InlineLinksBecomeSpans(t *testing.T) {
	input := "See [the docs](http://example.com/docs) for more.\n"
	p := &MarkdownParser{}
	d, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	para := d.Body.Child(0).(*doc.Paragraph)
	if para.ChildCount() != 3 {
		t.Fatalf("expected 3 runs, got %d", para.ChildCount())
	}

	link := para.Child(1).(*doc.Text)
	if link.Text() != "the docs" {
		t.Errorf("link text = %q", link.Text())
	}
	if got := link.LinkAt(0); got != "http://example.com/docs" {
		t.Errorf("link url = %q", got)
	}
	if plain := para.Child(0).(*doc.Text); plain.LinkAt(0) != "" {
		t.Error("plain run should not carry a link")
	}
}

func TestMarkdownParser_Lists(t *testing.T) {
	input := "- first\n- second\n- third\n"
	p := &MarkdownParser{}
	d, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, ok := d.Body.Child(0).(*doc.List)
	if !ok {
		t.Fatalf("expected a list, got %#v", d.Body.Child(0))
	}
	if list.Ordered {
		t.Error("dash list should be unordered")
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	if got := list.Items[1].Text(); got != "second" {
		t.Errorf("item 1 text = %q", got)
	}
}

func TestMarkdownParser_Images(t *testing.T) {
	input := "Look: ![a cat](cat.png)\n"
	p := &MarkdownParser{}
	d, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	para := d.Body.Child(0).(*doc.Paragraph)
	var img *doc.Image
	for i := 0; i < para.ChildCount(); i++ {
		if im, ok := para.Child(i).(*doc.Image); ok {
			img = im
		}
	}
	if img == nil {
		t.Fatal("expected an image run")
	}
	if img.Source != "cat.png" || img.Alt != "a cat" {
		t.Errorf("image = %+v", img)
	}
}
