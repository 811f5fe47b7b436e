package inkpress

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// RelatedEntries finds published entries sharing at least one category with
// current, in collection order.
func RelatedEntries(current Article, entries []Entry) []Entry {
	catSet := make(map[string]struct{}, len(current.Categories))
	for _, c := range current.Categories {
		catSet[c] = struct{}{}
	}
	var related []Entry
	for _, e := range entries {
		if e.Article.Slug == current.Slug {
			continue
		}
		for _, c := range e.Article.Categories {
			if _, ok := catSet[c]; ok {
				related = append(related, e)
				break
			}
		}
	}
	return related
}
