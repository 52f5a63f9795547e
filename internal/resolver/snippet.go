package resolver

import (
	"strings"
	"unicode/utf8"
)

// truncatePage caps a preview page at roughly max bytes, cutting at the last
// whitespace before the limit so a word is never split mid-way. The cut point
// is first pulled back onto a rune boundary so multi-byte text stays valid
// UTF-8 even when no whitespace precedes the limit.
func truncatePage(page string, max int) string {
	if len(page) <= max {
		return page
	}
	for max > 0 && !utf8.RuneStart(page[max]) {
		max--
	}
	cut := page[:max]
	if i := strings.LastIndexAny(cut, " \t\n"); i > 0 {
		cut = cut[:i]
	}
	return cut
}
