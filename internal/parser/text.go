package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
)

// TextParser handles plain text files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d := doc.New(titleFromFilename(filename))

	// Each blank-line-separated block becomes one paragraph with a single run.
	for _, para := range paragraphs {
		block := &doc.Paragraph{}
		block.Append(doc.NewText(para))
		d.Body.Append(block)
	}

	return d, nil
}
