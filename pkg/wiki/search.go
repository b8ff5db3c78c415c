package wiki

import (
	"strings"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// Filter returns the page titles matching the query, in the order of the
// full lexicographically sorted title list. An empty or whitespace query
// matches every page. Otherwise a page matches when the lowercase query,
// taken verbatim including any surrounding whitespace, is a substring of
// its lowercase title or its lowercase content. The scan is linear over
// the whole store on every call; there is no index. The result is never
// nil.
func Filter(store types.Store, query string) []string {
	titles := store.Titles()

	if strings.TrimSpace(query) == "" {
		return titles
	}
	q := strings.ToLower(query)

	matched := make([]string, 0, len(titles))
	for _, title := range titles {
		if strings.Contains(strings.ToLower(title), q) ||
			strings.Contains(strings.ToLower(store[title].Content), q) {
			matched = append(matched, title)
		}
	}
	return matched
}
