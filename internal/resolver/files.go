package resolver

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/dgallion1/doclink/internal/filestore"
)

// NoResultsPage is the fixed rendering returned when a file search matches
// nothing. Zero matches is not an error.
const NoResultsPage = "<p>No results found.</p>"

// FileSearcher is the file-store capability the file resolver needs.
type FileSearcher interface {
	Search(ctx context.Context, titleContains string, limit int) ([]filestore.File, error)
}

// FileResolver suggests links to stored files whose title contains the
// first selected word.
type FileResolver struct {
	Store FileSearcher
	Limit int
}

// Lookup searches by the first selected word and renders one radio input
// per match. The last enumerated match is default-checked and becomes the
// suggested URL, matching the store's enumeration order.
func (r *FileResolver) Lookup(ctx context.Context, selected []string) (Result, error) {
	word := firstWord(selected)

	files, err := r.Store.Search(ctx, word, r.Limit)
	if err != nil {
		return Result{}, fmt.Errorf("file search: %w", err)
	}
	if len(files) == 0 {
		return Result{Word: word, Page: NoResultsPage}, nil
	}

	var b strings.Builder
	var lastURL string
	for i, f := range files {
		checked := ""
		if i == len(files)-1 {
			checked = " checked"
		}
		fmt.Fprintf(&b, "<input type=\"radio\" name=\"file\" value=\"%s\"%s>%s<br>\n",
			html.EscapeString(f.URL), checked, html.EscapeString(f.Name))
		lastURL = f.URL
	}

	return Result{Word: word, URL: lastURL, Page: b.String()}, nil
}
