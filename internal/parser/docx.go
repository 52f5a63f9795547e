package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Each Word paragraph becomes a document
// paragraph; each run keeps its own text element so partial selections line
// up with the source runs.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "doclink-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	wordDoc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	d := doc.New(titleFromFilename(filename))

	for _, item := range wordDoc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		block := &doc.Paragraph{Heading: docxHeadingLevel(para)}
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			var buf strings.Builder
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					buf.WriteString(t.Text)
				}
			}
			if buf.Len() > 0 {
				block.Append(doc.NewText(buf.String()))
			}
		}
		if block.ChildCount() > 0 {
			d.Body.Append(block)
		}
	}

	return d, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}
