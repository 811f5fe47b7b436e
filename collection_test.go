package inkpress

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testArticle(slug string, date time.Time, categories ...string) Article {
	return Article{
		Slug:       slug,
		Title:      "Title of " + slug,
		Date:       date,
		Categories: normalizeCategories(categories),
		Format:     FormatHTML,
		Path:       "posts/" + slug + ".html",
	}
}

func TestCollectionDuplicateSlug(t *testing.T) {
	c := NewCollection()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := c.Add(testArticle("ssh-keys", day), "<p>one</p>"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	err := c.Add(testArticle("ssh-keys", day.AddDate(0, 1, 0)), "<p>two</p>")
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("err = %v, want ErrDuplicateSlug", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 after rejected duplicate", c.Len())
	}
}

func TestCollectionOrdering(t *testing.T) {
	c := NewCollection()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Insert out of order; listing must come back newest first, ties by slug.
	for _, a := range []Article{
		testArticle("oldest", base),
		testArticle("newest", base.AddDate(0, 2, 0)),
		testArticle("b-tied", base.AddDate(0, 1, 0)),
		testArticle("a-tied", base.AddDate(0, 1, 0)),
	} {
		if err := c.Add(a, ""); err != nil {
			t.Fatalf("Add(%s) failed: %v", a.Slug, err)
		}
	}

	var got []string
	for _, e := range c.Articles("") {
		got = append(got, e.Article.Slug)
	}
	want := []string{"newest", "a-tied", "b-tied", "oldest"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionCategoryFilter(t *testing.T) {
	c := NewCollection()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mustAdd(t, c, testArticle("one", base, "crypto", "security"))
	mustAdd(t, c, testArticle("two", base.AddDate(0, 0, 1), "mail"))
	mustAdd(t, c, testArticle("three", base.AddDate(0, 0, 2), "crypto"))

	filtered := c.Articles("crypto")
	if len(filtered) != 2 {
		t.Fatalf("Articles(crypto) returned %d entries, want 2", len(filtered))
	}
	for _, e := range filtered {
		if !hasCategory(e.Article, "crypto") {
			t.Errorf("entry %s lacks crypto category", e.Article.Slug)
		}
	}

	if diff := cmp.Diff([]string{"crypto", "mail", "security"}, c.Categories()); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection()
	a := testArticle("hello", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	mustAdd(t, c, a)

	e, err := c.Get("hello")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Article.Slug != "hello" {
		t.Errorf("got slug %q", e.Article.Slug)
	}

	if _, err := c.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(nope) = %v, want ErrNotFound", err)
	}
}

func mustAdd(t *testing.T, c *Collection, a Article) {
	t.Helper()
	if err := c.Add(a, "<p>"+a.Slug+"</p>"); err != nil {
		t.Fatalf("Add(%s) failed: %v", a.Slug, err)
	}
}
