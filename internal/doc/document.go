package doc

import "fmt"

// Range references a document element within a selection. When Partial is
// true the selection covers only the runes [Start, End] (End inclusive) of
// the element's text.
type Range struct {
	El      Element
	Partial bool
	Start   int
	End     int
}

// Cursor is a zero-width insertion point inside a text run.
type Cursor struct {
	El     *Text
	Offset int
}

// Document owns an element tree plus the host-side selection state. A
// document has either a selection or a cursor, never both.
type Document struct {
	Title string
	Body  *Body

	sel    []Range
	cursor *Cursor
}

func New(title string) *Document {
	return &Document{
		Title: title,
		Body:  &Body{},
	}
}

// Selection returns the current selection, or nil when none exists.
func (d *Document) Selection() []Range {
	return d.sel
}

// SetSelection replaces the selection and clears any cursor. An empty
// selection clears both.
func (d *Document) SetSelection(ranges []Range) {
	d.cursor = nil
	if len(ranges) == 0 {
		d.sel = nil
		return
	}
	d.sel = ranges
}

// Cursor returns the current cursor, or nil when none exists.
func (d *Document) Cursor() *Cursor {
	return d.cursor
}

// SetCursor places the cursor and clears any selection.
func (d *Document) SetCursor(el *Text, offset int) {
	d.sel = nil
	d.cursor = &Cursor{El: el, Offset: offset}
}

// ClearSelection removes both selection and cursor.
func (d *Document) ClearSelection() {
	d.sel = nil
	d.cursor = nil
}

// ElementAt resolves a child-index path from the body. An empty path yields
// the body itself.
func (d *Document) ElementAt(path []int) (Element, error) {
	var cur Element = d.Body
	for depth, i := range path {
		if i < 0 || i >= cur.ChildCount() {
			return nil, fmt.Errorf("element path %v: index %d out of range at depth %d", path, i, depth)
		}
		cur = cur.Child(i)
	}
	return cur, nil
}
