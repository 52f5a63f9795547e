package doc

import "sort"

// LinkSpan marks a hyperlink over a rune range of a text run.
// End is inclusive.
type LinkSpan struct {
	Start int
	End   int
	URL   string
}

// Text is a leaf run of characters with zero or more link spans.
type Text struct {
	runes []rune
	links []LinkSpan
}

func NewText(s string) *Text {
	return &Text{runes: []rune(s)}
}

func (t *Text) ChildCount() int     { return 0 }
func (t *Text) Child(i int) Element { return nil }

func (t *Text) Text() string { return string(t.runes) }

func (t *Text) Len() int { return len(t.runes) }

// Slice returns the runes in [start, end] (end inclusive). Out-of-range
// bounds are clamped.
func (t *Text) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end >= len(t.runes) {
		end = len(t.runes) - 1
	}
	if start > end {
		return ""
	}
	return string(t.runes[start : end+1])
}

// RuneAt returns the rune at offset i and whether it exists.
func (t *Text) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= len(t.runes) {
		return 0, false
	}
	return t.runes[i], true
}

// SetLinkURL links the entire run.
func (t *Text) SetLinkURL(url string) {
	if len(t.runes) == 0 {
		return
	}
	t.SetLinkRange(0, len(t.runes)-1, url)
}

// SetLinkRange links the runes in [start, end] inclusive. Existing spans
// overlapping the range are clipped so spans never overlap.
func (t *Text) SetLinkRange(start, end int, url string) {
	if start < 0 {
		start = 0
	}
	if end >= len(t.runes) {
		end = len(t.runes) - 1
	}
	if start > end {
		return
	}

	var kept []LinkSpan
	for _, sp := range t.links {
		if sp.End < start || sp.Start > end {
			kept = append(kept, sp)
			continue
		}
		if sp.Start < start {
			kept = append(kept, LinkSpan{Start: sp.Start, End: start - 1, URL: sp.URL})
		}
		if sp.End > end {
			kept = append(kept, LinkSpan{Start: end + 1, End: sp.End, URL: sp.URL})
		}
	}
	kept = append(kept, LinkSpan{Start: start, End: end, URL: url})
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	t.links = kept
}

// Links returns the run's link spans in text order.
func (t *Text) Links() []LinkSpan {
	out := make([]LinkSpan, len(t.links))
	copy(out, t.links)
	return out
}

// LinkAt returns the link URL covering offset i, or "" if none.
func (t *Text) LinkAt(i int) string {
	for _, sp := range t.links {
		if i >= sp.Start && i <= sp.End {
			return sp.URL
		}
	}
	return ""
}

// InsertText inserts s at the given rune offset and returns the inclusive
// span the inserted text occupies. Spans at or after the offset shift right;
// a span surrounding the offset is not extended over the insertion.
func (t *Text) InsertText(offset int, s string) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.runes) {
		offset = len(t.runes)
	}
	ins := []rune(s)
	if len(ins) == 0 {
		return offset, offset - 1
	}

	var updated []LinkSpan
	for _, sp := range t.links {
		switch {
		case sp.End < offset:
			updated = append(updated, sp)
		case sp.Start >= offset:
			updated = append(updated, LinkSpan{Start: sp.Start + len(ins), End: sp.End + len(ins), URL: sp.URL})
		default:
			// Split around the insertion point.
			updated = append(updated,
				LinkSpan{Start: sp.Start, End: offset - 1, URL: sp.URL},
				LinkSpan{Start: offset + len(ins), End: sp.End + len(ins), URL: sp.URL})
		}
	}
	t.links = updated

	tail := make([]rune, len(t.runes[offset:]))
	copy(tail, t.runes[offset:])
	t.runes = append(append(t.runes[:offset], ins...), tail...)

	return offset, offset + len(ins) - 1
}
