package markup

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"
)

// Heading is one heading element found in a converted body, in document order.
type Heading struct {
	Level int
	ID    string
	Text  string
}

var (
	reHeadingFull = regexp.MustCompile(`(?is)<h([1-6])([^>]*)>(.*?)</h[1-6]\s*>`)
	reHeadingID   = regexp.MustCompile(`(?i)\bid\s*=\s*"([^"]*)"`)
	reTag         = regexp.MustCompile(`<[^>]*>`)
)

// ensureHeadingIDs gives every heading element an id attribute so the table
// of contents has something to link to. Existing ids are kept; missing ones
// are derived from the heading text.
func ensureHeadingIDs(body string) string {
	n := 0
	return reHeadingFull.ReplaceAllStringFunc(body, func(m string) string {
		n++
		sub := reHeadingFull.FindStringSubmatch(m)
		attrs := sub[2]
		if reHeadingID.MatchString(attrs) {
			return m
		}
		id := anchorID(sub[3], n)
		return "<h" + sub[1] + attrs + ` id="` + id + `">` + sub[3] + "</h" + sub[1] + ">"
	})
}

// collectHeadings scans converted HTML for heading elements, in document
// order. Tags inside a heading are stripped from its text.
func collectHeadings(body string) []Heading {
	var headings []Heading
	for _, m := range reHeadingFull.FindAllStringSubmatch(body, -1) {
		level, _ := strconv.Atoi(m[1])
		id := ""
		if idm := reHeadingID.FindStringSubmatch(m[2]); idm != nil {
			id = idm[1]
		}
		text := strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(m[3], "")))
		headings = append(headings, Heading{Level: level, ID: id, Text: text})
	}
	return headings
}

// tocHTML renders the navigation fragment for a table-of-contents directive:
// one list item per heading, document order preserved.
func tocHTML(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="toc"><ul>`)
	for _, h := range headings {
		b.WriteString(`<li class="toc-level-` + strconv.Itoa(h.Level) + `">`)
		if h.ID != "" {
			b.WriteString(`<a href="#` + html.EscapeString(h.ID) + `">` + html.EscapeString(h.Text) + `</a>`)
		} else {
			b.WriteString(html.EscapeString(h.Text))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></nav>`)
	return b.String()
}

// anchorID derives a URL-safe fragment id from heading text, falling back
// to a positional id when the text has no usable characters.
func anchorID(text string, position int) string {
	text = strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(text, "")))
	if normalized, err := slug.Normalize(text); err == nil && normalized != "" {
		return normalized
	}
	return "section-" + strconv.Itoa(position)
}
