package catalog

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify transliterates name to ASCII, lowercases it and collapses every run
// of non-alphanumerics into a single "-", trimmed at both ends.
func Slugify(name string) string {
	// slug.Make keeps underscores; fold them into the separator too.
	s := slugSeparators.ReplaceAllString(slug.Make(name), "-")
	return strings.Trim(s, "-")
}
