package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclink/internal/doc"
)

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	d, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Title != "notes" {
		t.Errorf("title = %q, want %q", d.Title, "notes")
	}
	if d.Body.ChildCount() != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", d.Body.ChildCount())
	}

	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		para := d.Body.Child(i).(*doc.Paragraph)
		if para.Text() != w {
			t.Errorf("paragraph %d: got %q, want %q", i, para.Text(), w)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	d, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Body.ChildCount() != 0 {
		t.Errorf("expected empty body, got %d blocks", d.Body.ChildCount())
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"a.txt", true},
		{"a.md", true},
		{"a.markdown", true},
		{"a.html", true},
		{"a.htm", true},
		{"a.docx", true},
		{"a.pdf", true},
		{"a.csv", true},
		{"a.exe", false},
		{"a", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if tt.ok && err != nil {
			t.Errorf("ForFile(%q) unexpected error: %v", tt.filename, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ForFile(%q) expected error", tt.filename)
		}
	}
}
