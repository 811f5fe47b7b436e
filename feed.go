package inkpress

import (
	"encoding/xml"
	"io"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed writes an RSS 2.0 feed for entries to w. Entries are expected in
// collection order (date descending); limit caps the item count, 0 means all.
func WriteFeed(w io.Writer, cfg SiteConfig, entries []Entry, limit int) error {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	items := make([]rssItem, 0, len(entries))
	for _, e := range entries {
		a := e.Article
		articleURL := BuildURL(cfg.URL, "blog", a.Slug)
		items = append(items, rssItem{
			Title:       a.Title,
			Link:        articleURL,
			Description: a.Description,
			PubDate:     a.Date.Format(time.RFC1123Z),
			GUID:        articleURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        cfg.URL,
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}
