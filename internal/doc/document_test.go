package doc

import "testing"

func buildDoc() (*Document, *Text) {
	d := New("test")
	run := NewText("hello world")
	para := &Paragraph{}
	para.Append(run)
	d.Body.Append(para)

	list := &List{}
	item := &Paragraph{}
	item.Append(NewText("item one"))
	list.Items = append(list.Items, item)
	d.Body.Append(list)

	return d, run
}

func TestDocument_ElementAt(t *testing.T) {
	d, run := buildDoc()

	el, err := d.ElementAt([]int{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el != Element(run) {
		t.Error("expected path [0 0] to resolve to the first text run")
	}

	if el, err := d.ElementAt(nil); err != nil || el != Element(d.Body) {
		t.Errorf("empty path should resolve to the body, got %v, %v", el, err)
	}

	if _, err := d.ElementAt([]int{5}); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := d.ElementAt([]int{0, 0, 0}); err == nil {
		t.Error("expected error for path descending into a leaf")
	}
}

func TestDocument_SelectionAndCursorAreExclusive(t *testing.T) {
	d, run := buildDoc()

	d.SetSelection([]Range{{El: run, Partial: false}})
	if d.Cursor() != nil {
		t.Error("setting selection should clear cursor")
	}

	d.SetCursor(run, 3)
	if d.Selection() != nil {
		t.Error("setting cursor should clear selection")
	}
	if cur := d.Cursor(); cur == nil || cur.Offset != 3 {
		t.Errorf("cursor not set: %+v", d.Cursor())
	}

	d.ClearSelection()
	if d.Selection() != nil || d.Cursor() != nil {
		t.Error("ClearSelection should drop both")
	}
}
