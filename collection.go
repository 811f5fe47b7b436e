package inkpress

import (
	"fmt"
	"sort"
	"sync"
)

// Collection aggregates loaded articles and their rendered fragments.
// It enforces slug uniqueness across the whole set and keeps entries ordered
// by date, newest first. The write side is the build pipeline; the read side
// (server handlers, feed, sitemap) is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	entries []Entry
	bySlug  map[string]int
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{bySlug: make(map[string]int)}
}

// Add inserts an article with its rendered HTML. A slug already present in
// the collection is rejected with ErrDuplicateSlug naming both documents.
func (c *Collection) Add(a Article, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.bySlug[a.Slug]; ok {
		return fmt.Errorf("%w: %q claimed by %s and %s",
			ErrDuplicateSlug, a.Slug, c.entries[i].Article.Path, a.Path)
	}
	c.entries = append(c.entries, Entry{Article: a, HTML: html})

	// Date descending, slug ascending on ties: stable listing and feed order.
	sort.Slice(c.entries, func(i, j int) bool {
		ai, aj := c.entries[i].Article, c.entries[j].Article
		if !ai.Date.Equal(aj.Date) {
			return ai.Date.After(aj.Date)
		}
		return ai.Slug < aj.Slug
	})
	for i, e := range c.entries {
		c.bySlug[e.Article.Slug] = i
	}
	return nil
}

// Articles returns entries in date order, optionally filtered by category.
// Draft policy is the loader's caller's concern: drafts not admitted at load
// time never appear here.
func (c *Collection) Articles(category string) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Entry
	for _, e := range c.entries {
		if category != "" && !hasCategory(e.Article, category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Get returns the entry for slug, or ErrNotFound.
func (c *Collection) Get(slug string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i, ok := c.bySlug[slug]; ok {
		return c.entries[i], nil
	}
	return Entry{}, ErrNotFound
}

// Categories returns the sorted, deduplicated categories of all entries.
func (c *Collection) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.entries {
		for _, cat := range e.Article.Categories {
			if _, ok := seen[cat]; !ok {
				seen[cat] = struct{}{}
				out = append(out, cat)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Len reports the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func hasCategory(a Article, category string) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}
