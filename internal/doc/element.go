package doc

// Element is a node in the document tree. Composite elements expose their
// children; leaf elements (ChildCount()==0) accept a link assignment.
type Element interface {
	ChildCount() int
	Child(i int) Element
	SetLinkURL(url string)
}

// TextElement is implemented by elements that expose an editable text view.
// Offsets are rune indexes; SetLinkRange treats end as inclusive, matching
// the selection model.
type TextElement interface {
	Element
	Text() string
	SetLinkRange(start, end int, url string)
	InsertText(offset int, s string) (start, end int)
}

// Body is the document root. Its children are paragraphs and lists.
type Body struct {
	Children []Element
}

func (b *Body) ChildCount() int       { return len(b.Children) }
func (b *Body) Child(i int) Element   { return b.Children[i] }
func (b *Body) SetLinkURL(url string) {}

func (b *Body) Append(el Element) {
	b.Children = append(b.Children, el)
}

// Paragraph holds an ordered sequence of inline runs (text and images).
// Heading is 0 for body text, 1-6 for heading paragraphs.
type Paragraph struct {
	Heading  int
	Children []Element
}

func (p *Paragraph) ChildCount() int       { return len(p.Children) }
func (p *Paragraph) Child(i int) Element   { return p.Children[i] }
func (p *Paragraph) SetLinkURL(url string) {}

func (p *Paragraph) Append(el Element) {
	p.Children = append(p.Children, el)
}

// Text returns the concatenated text of the paragraph's text runs.
func (p *Paragraph) Text() string {
	var out string
	for _, c := range p.Children {
		if t, ok := c.(*Text); ok {
			out += t.Text()
		}
	}
	return out
}

// List is a block of item paragraphs.
type List struct {
	Ordered bool
	Items   []*Paragraph
}

func (l *List) ChildCount() int       { return len(l.Items) }
func (l *List) Child(i int) Element   { return l.Items[i] }
func (l *List) SetLinkURL(url string) {}

// Image is an inline image leaf. It carries no text; assigning a link wraps
// the whole image.
type Image struct {
	Source  string
	Alt     string
	LinkURL string
}

func (im *Image) ChildCount() int     { return 0 }
func (im *Image) Child(i int) Element { return nil }
func (im *Image) SetLinkURL(url string) {
	im.LinkURL = url
}
