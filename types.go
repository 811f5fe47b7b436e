package inkpress

import "time"

// Article is the structured record loaded from one source document.
// It is immutable after load: the loader is the only writer, and rendering
// never touches it. The document itself is the source of truth; there is
// no persistence layer behind it.
type Article struct {
	Slug         string    // unique across the collection, URL-safe
	Title        string    // required
	Date         time.Time // required, authoritative for ordering and feeds
	LastModified time.Time // defaults to Date, never before it
	Categories   []string  // lowercased, deduplicated, sorted; never nil
	Description  string    // optional, used for summaries and feeds
	Format       string    // body dialect: "html" (default) or "markdown"
	Draft        bool      // drafts are excluded from listings and feeds
	Body         string    // raw marked-up body text
	Path         string    // source document location, used in error reports
}

// Entry pairs a loaded article with its rendered HTML fragment.
type Entry struct {
	Article Article
	HTML    string
}
