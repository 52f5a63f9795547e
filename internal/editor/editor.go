// Package editor implements the selection-to-link operations: extracting the
// selected text from a document and applying a link back onto the selection
// or at the cursor.
package editor

import (
	"errors"

	"github.com/dgallion1/doclink/internal/doc"
)

// User-facing faults. Both abort the current action entirely; the messages
// are meant for direct display.
var (
	ErrNoTextSelected = errors.New("no text selected")
	ErrNoInsertPoint  = errors.New("must select a location to insert the link")
)

// SelectedText returns the ordered text fragments covered by the document's
// selection. Partial ranges are sliced by their inclusive offsets; whole
// ranges contribute the element's full text only when the element exposes a
// text view and the text is non-empty. Elements without text (images) are
// skipped. Returns ErrNoTextSelected when there is no selection or every
// visited element yields nothing.
func SelectedText(d *doc.Document) ([]string, error) {
	sel := d.Selection()
	if len(sel) == 0 {
		return nil, ErrNoTextSelected
	}

	var fragments []string
	for _, r := range sel {
		if r.Partial {
			te, ok := r.El.(doc.TextElement)
			if !ok {
				continue
			}
			runes := []rune(te.Text())
			start, end := r.Start, r.End
			if start < 0 {
				start = 0
			}
			if end >= len(runes) {
				end = len(runes) - 1
			}
			if start <= end {
				fragments = append(fragments, string(runes[start:end+1]))
			}
			continue
		}
		// Whole element: anything with a text view contributes its full
		// text; images and other textless leaves are skipped.
		tx, ok := r.El.(interface{ Text() string })
		if !ok {
			continue
		}
		if s := tx.Text(); s != "" {
			fragments = append(fragments, s)
		}
	}

	if len(fragments) == 0 {
		return nil, ErrNoTextSelected
	}
	return fragments, nil
}

// ApplyLink writes url into the document. With a selection, partial text
// ranges get the link over their exact offsets and any other range element
// has the link propagated to every descendant leaf. With only a cursor, text
// is inserted at the cursor (space-padded against adjacent non-space
// characters) and the link covers exactly the inserted span. With neither,
// ApplyLink returns ErrNoInsertPoint.
func ApplyLink(d *doc.Document, url, text string) error {
	if sel := d.Selection(); len(sel) > 0 {
		for _, r := range sel {
			if te, ok := r.El.(doc.TextElement); ok && r.Partial {
				te.SetLinkRange(r.Start, r.End, url)
				continue
			}
			linkLeaves(r.El, url)
		}
		return nil
	}

	cur := d.Cursor()
	if cur == nil {
		return ErrNoInsertPoint
	}
	insertLinkedText(cur, url, text)
	return nil
}

// linkLeaves walks the subtree depth-first. Leaves receive the link;
// composite nodes only delegate.
func linkLeaves(el doc.Element, url string) {
	n := el.ChildCount()
	if n == 0 {
		el.SetLinkURL(url)
		return
	}
	for i := 0; i < n; i++ {
		linkLeaves(el.Child(i), url)
	}
}

// insertLinkedText inserts text at the cursor with spacing normalization: a
// space is prepended when the preceding character exists and is not a space,
// and appended when the following character exists and is not a space. The
// link covers the whole inserted span, padding included.
func insertLinkedText(cur *doc.Cursor, url, text string) {
	if before, ok := cur.El.RuneAt(cur.Offset - 1); ok && before != ' ' {
		text = " " + text
	}
	if after, ok := cur.El.RuneAt(cur.Offset); ok && after != ' ' {
		text = text + " "
	}
	start, end := cur.El.InsertText(cur.Offset, text)
	if end >= start {
		cur.El.SetLinkRange(start, end, url)
	}
}
