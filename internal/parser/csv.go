package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/doclink/internal/doc"
)

// CSVParser handles CSV files. The header row becomes a heading paragraph
// and each data row becomes one list item.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doc.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	d := doc.New(titleFromFilename(filename))
	if len(records) == 0 {
		return d, nil
	}

	header := &doc.Paragraph{Heading: 1}
	header.Append(doc.NewText(strings.Join(records[0], ", ")))
	d.Body.Append(header)

	if len(records) == 1 {
		return d, nil
	}

	list := &doc.List{}
	for _, row := range records[1:] {
		item := &doc.Paragraph{}
		item.Append(doc.NewText(strings.Join(row, ", ")))
		list.Items = append(list.Items, item)
	}
	d.Body.Append(list)

	return d, nil
}
