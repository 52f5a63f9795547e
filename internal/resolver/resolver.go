// Package resolver turns selected text into link candidates, either by
// searching a file store by title or by fetching an external reference page.
package resolver

import "strings"

// Result is the uniform outcome of a lookup: the word that was looked up,
// the suggested link URL, and an HTML page for the preview surface. Both
// strategies return this shape so the caller renders a single surface.
type Result struct {
	Word string `json:"word"`
	URL  string `json:"url"`
	Page string `json:"page"`
}

// firstWord returns the first whitespace-delimited word of the selected
// fragments, or "" when there is none.
func firstWord(selected []string) string {
	for _, frag := range selected {
		if fields := strings.Fields(frag); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
