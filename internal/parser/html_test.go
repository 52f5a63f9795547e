package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclink/internal/doc"
)

func TestHTMLParser_ParagraphsAndTitle(t *testing.T) {
	input := `<html><head><title>My Page</title></head><body>
<h2>Heading</h2>
<p>Some text.</p>
</body></html>`

	p := &HTMLParser{}
	d, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Title != "My Page" {
		t.Errorf("title = %q, want %q", d.Title, "My Page")
	}
	if d.Body.ChildCount() != 2 {
		t.Fatalf("expected 2 blocks, got %d", d.Body.ChildCount())
	}

	h := d.Body.Child(0).(*doc.Paragraph)
	if h.Heading != 2 || strings.TrimSpace(h.Text()) != "Heading" {
		t.Errorf("block 0 = heading %d, text %q", h.Heading, h.Text())
	}
	para := d.Body.Child(1).(*doc.Paragraph)
	if strings.TrimSpace(para.Text()) != "Some text." {
		t.Errorf("block 1 text = %q", para.Text())
	}
}

func TestHTMLParser_AnchorsBecomeLinkSpans(t *testing.T) {
	input := `<body><p>Visit <a href="http://example.com">our site</a> today.</p></body>`

	p := &HTMLParser{}
	d, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	para := d.Body.Child(0).(*doc.Paragraph)
	var link *doc.Text
	for i := 0; i < para.ChildCount(); i++ {
		if run, ok := para.Child(i).(*doc.Text); ok && run.LinkAt(0) != "" {
			link = run
		}
	}
	if link == nil {
		t.Fatal("expected a linked run")
	}
	if link.Text() != "our site" {
		t.Errorf("link text = %q", link.Text())
	}
	if link.LinkAt(0) != "http://example.com" {
		t.Errorf("link url = %q", link.LinkAt(0))
	}
}

func TestHTMLParser_ImagesAndLists(t *testing.T) {
	input := `<body>
<p><img src="cat.png" alt="a cat"></p>
<ol><li>first</li><li>second</li></ol>
</body>`

	p := &HTMLParser{}
	d, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Body.ChildCount() != 2 {
		t.Fatalf("expected 2 blocks, got %d", d.Body.ChildCount())
	}

	para := d.Body.Child(0).(*doc.Paragraph)
	img, ok := para.Child(0).(*doc.Image)
	if !ok || img.Source != "cat.png" || img.Alt != "a cat" {
		t.Errorf("image = %#v", para.Child(0))
	}

	list, ok := d.Body.Child(1).(*doc.List)
	if !ok || !list.Ordered || len(list.Items) != 2 {
		t.Fatalf("list = %#v", d.Body.Child(1))
	}
	if got := strings.TrimSpace(list.Items[0].Text()); got != "first" {
		t.Errorf("item 0 = %q", got)
	}
}

func TestHTMLParser_SkipsScriptAndStyle(t *testing.T) {
	input := `<body><script>evil()</script><p>Visible.</p><style>p{}</style></body>`

	p := &HTMLParser{}
	d, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Body.ChildCount() != 1 {
		t.Fatalf("expected 1 block, got %d", d.Body.ChildCount())
	}
	if got := strings.TrimSpace(d.Body.Child(0).(*doc.Paragraph).Text()); got != "Visible." {
		t.Errorf("text = %q", got)
	}
}
