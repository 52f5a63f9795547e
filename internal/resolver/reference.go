package resolver

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultLang is the language subtag used when a lookup specifies none.
const DefaultLang = "en"

// PageFetcher is the fetch capability the reference resolver needs. The
// fetcher must return the body for non-2xx responses rather than erroring;
// error pages are previewed like any other.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// ReferenceResolver previews an encyclopedia article for the first selected
// word.
type ReferenceResolver struct {
	Fetcher      PageFetcher
	MaxPageBytes int
}

// Lookup builds the article URL for the trimmed first selected word and
// fetches it. The returned page has its hyperlinks disabled so the preview
// cannot navigate away.
func (r *ReferenceResolver) Lookup(ctx context.Context, selected []string, lang string) (Result, error) {
	word := strings.TrimSpace(firstWord(selected))
	if lang == "" {
		lang = DefaultLang
	}

	pageURL := fmt.Sprintf("http://%s.wikipedia.org/wiki/%s", lang, url.PathEscape(word))

	page, err := r.Fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		return Result{}, fmt.Errorf("reference lookup: %w", err)
	}

	page = disableLinks(page)
	if r.MaxPageBytes > 0 {
		page = truncatePage(page, r.MaxPageBytes)
	}

	return Result{Word: word, URL: pageURL, Page: page}, nil
}

// disableLinks neuters every anchor in the markup by renaming its href
// attribute. Plain textual substitution is enough here: the page is only
// ever rendered in a preview pane.
func disableLinks(page string) string {
	page = strings.ReplaceAll(page, `href="`, `data-ref="`)
	page = strings.ReplaceAll(page, `href='`, `data-ref='`)
	return page
}
