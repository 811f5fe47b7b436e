// Package views provides the preview server's pages as templ components.
// Components are written by hand against templ.ComponentFunc; article body
// fragments are already rendered HTML and are embedded without escaping.
package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// pageMeta carries per-page head metadata.
type pageMeta struct {
	Title       string
	Description string
	URL         string
	OGType      string
}

// layout wraps body markup in the site chrome: head metadata, OpenGraph
// tags, JSON-LD, header, and footer.
func layout(site Site, meta pageMeta, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := meta.Title
		if title == "" {
			title = site.Name
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title>`, html.EscapeString(title)); err != nil {
			return err
		}
		if meta.Description != "" {
			fmt.Fprintf(w, `<meta name="description" content="%s">`, html.EscapeString(meta.Description))
		}
		if meta.URL != "" {
			fmt.Fprintf(w, `<link rel="canonical" href="%s">`, html.EscapeString(meta.URL))
			fmt.Fprintf(w, `<meta property="og:url" content="%s">`, html.EscapeString(meta.URL))
		}
		fmt.Fprintf(w, `<meta property="og:title" content="%s">`, html.EscapeString(title))
		fmt.Fprintf(w, `<meta property="og:type" content="%s">`, html.EscapeString(meta.OGType))
		fmt.Fprintf(w, `<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml">`,
			html.EscapeString(site.Name))
		fmt.Fprintf(w, `<link rel="stylesheet" href="/public/style.css">`)
		fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, WebsiteJsonLD(site))
		fmt.Fprintf(w, `</head><body><header><a href="/">%s</a></header><main>`, html.EscapeString(site.Name))
		if err := body(w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `</main><footer><a href="/feed.xml">RSS</a></footer></body></html>`)
		return err
	})
}

// Home renders the article listing, optionally filtered by category.
func Home(site Site, articles []Article, activeCategory string, categories []string) templ.Component {
	return layout(site, pageMeta{
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}, func(w io.Writer) error {
		fmt.Fprint(w, `<ul class="categories">`)
		for _, c := range categories {
			class := "category"
			if c == activeCategory {
				class += " active"
			}
			fmt.Fprintf(w, `<li><a class="%s" href="/?category=%s">%s</a></li>`,
				class, PathEscape(c), html.EscapeString(c))
		}
		fmt.Fprint(w, `</ul><section class="articles">`)
		for _, a := range articles {
			fmt.Fprintf(w, `<article><h2><a href="%s">%s</a></h2>`,
				a.Link(), html.EscapeString(a.Title))
			fmt.Fprintf(w, `<time datetime="%s">%s</time>`,
				a.Date.Format("2006-01-02"), a.Date.Format("January 2, 2006"))
			if a.Description != "" {
				fmt.Fprintf(w, `<p>%s</p>`, html.EscapeString(a.Description))
			}
			fmt.Fprint(w, `</article>`)
		}
		_, err := fmt.Fprint(w, `</section>`)
		return err
	})
}

// Post renders a single article page with its related articles.
func Post(site Site, article Article, related []Article) templ.Component {
	return layout(site, pageMeta{
		Title:       article.Title + " | " + site.Name,
		Description: article.Description,
		URL:         buildURL(site.URL, "blog", article.Slug),
		OGType:      "article",
	}, func(w io.Writer) error {
		fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, ArticleJsonLD(article, site))
		fmt.Fprintf(w, `<article><h1>%s</h1>`, html.EscapeString(article.Title))
		fmt.Fprintf(w, `<time datetime="%s">%s</time>`,
			article.Date.Format("2006-01-02"), article.Date.Format("January 2, 2006"))
		if len(article.Categories) > 0 {
			fmt.Fprint(w, `<ul class="categories">`)
			for _, c := range article.Categories {
				fmt.Fprintf(w, `<li><a href="/?category=%s">%s</a></li>`, PathEscape(c), html.EscapeString(c))
			}
			fmt.Fprint(w, `</ul>`)
		}
		// Rendered fragment: trusted output of the markup renderer.
		fmt.Fprint(w, article.HTML)
		fmt.Fprint(w, `</article>`)
		if len(related) > 0 {
			fmt.Fprint(w, `<aside class="related"><h2>Related</h2><ul>`)
			for _, r := range related {
				fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`, r.Link(), html.EscapeString(r.Title))
			}
			fmt.Fprint(w, `</ul></aside>`)
		}
		return nil
	})
}

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	return layout(site, pageMeta{Title: "Not Found | " + site.Name, OGType: "website"}, func(w io.Writer) error {
		_, err := fmt.Fprint(w, `<h1>404</h1><p>That page does not exist.</p><p><a href="/">Back home</a></p>`)
		return err
	})
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	return layout(site, pageMeta{Title: "Server Error | " + site.Name, OGType: "website"}, func(w io.Writer) error {
		_, err := fmt.Fprint(w, `<h1>500</h1><p>Something went wrong.</p><p><a href="/">Back home</a></p>`)
		return err
	})
}
