package inkpress

import (
	"encoding/xml"
	"io"
	"strings"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap for the site root plus every entry to w.
// lastmod comes from the article's LastModified timestamp.
func WriteSitemap(w io.Writer, cfg SiteConfig, entries []Entry) error {
	urls := []sitemapURL{
		{Loc: strings.TrimSuffix(cfg.URL, "/") + "/"},
	}
	for _, e := range entries {
		u := sitemapURL{Loc: BuildURL(cfg.URL, "blog", e.Article.Slug)}
		if !e.Article.LastModified.IsZero() {
			u.LastMod = e.Article.LastModified.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
