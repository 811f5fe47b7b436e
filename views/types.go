package views

import "time"

// Site holds site-wide settings passed to every page so nothing is
// hardcoded in templates.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Article is the view model for one rendered article.
type Article struct {
	Slug        string
	Title       string
	Date        time.Time
	Categories  []string
	Description string
	HTML        string // rendered body fragment, embedded as-is
}

// Link returns the site-relative path of the article page.
func (a Article) Link() string {
	return "/blog/" + a.Slug + "/"
}
