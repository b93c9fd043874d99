package tagging

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a tag name into a stable ASCII key: accents are
// decomposed and dropped, anything outside [\w\s-] is removed, and runs of
// hyphens or whitespace become a single hyphen.
func Slugify(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	out := slugStrip.ReplaceAllString(b.String(), "")
	out = strings.ToLower(strings.TrimSpace(out))
	out = slugCollapse.ReplaceAllString(out, "-")
	return strings.Trim(out, "-_")
}
