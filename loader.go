package inkpress

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// metaEnvelope mirrors the YAML front matter block of a source document.
// Timestamps stay strings here so an unparseable value surfaces as
// ErrInvalidTimestamp instead of a generic YAML error.
type metaEnvelope struct {
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Date         string   `yaml:"date"`
	LastModified string   `yaml:"lastModified"`
	LastMod      string   `yaml:"lastmod"`
	Categories   []string `yaml:"categories"`
	Tags         []string `yaml:"tags"`
	Description  string   `yaml:"description"`
	Format       string   `yaml:"format"`
	Draft        bool     `yaml:"draft"`
}

func (m *metaEnvelope) validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Date, validation.Required),
	)
}

// Accepted timestamp layouts, most common first. Hugo-style date-only
// values and full RFC3339 stamps both appear in real content.
var timestampLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadArticle parses a raw document into an Article. The document consists
// of a "---"-delimited YAML metadata block followed by free-form body text.
// It is a pure transformation: no filesystem or network access. Every
// failure wraps one of the package sentinels and carries path.
func LoadArticle(path string, src []byte) (Article, error) {
	var meta metaEnvelope
	body, err := frontmatter.MustParse(bytes.NewReader(src), &meta)
	if err != nil {
		return Article{}, docErr(path, fmt.Errorf("%w: %v", ErrMalformedDocument, err))
	}

	if err := meta.validate(); err != nil {
		return Article{}, docErr(path, fmt.Errorf("%w: %v", ErrMissingRequiredField, err))
	}

	date, err := parseTimestamp(meta.Date)
	if err != nil {
		return Article{}, docErr(path, err)
	}

	// lastModified (Hugo spelling: lastmod) defaults to date and must not
	// precede it.
	lastModified := date
	if raw := firstNonEmpty(meta.LastModified, meta.LastMod); raw != "" {
		lastModified, err = parseTimestamp(raw)
		if err != nil {
			return Article{}, docErr(path, err)
		}
		if lastModified.Before(date) {
			return Article{}, docErr(path, fmt.Errorf("%w: lastModified %s precedes date %s",
				ErrInvalidTimestamp, lastModified.Format("2006-01-02"), date.Format("2006-01-02")))
		}
	}

	articleSlug, err := resolveSlug(meta.Slug, path, meta.Title)
	if err != nil {
		return Article{}, docErr(path, err)
	}

	format := strings.ToLower(strings.TrimSpace(meta.Format))
	switch format {
	case "":
		format = formatForPath(path)
	case FormatHTML, FormatMarkdown:
	default:
		return Article{}, docErr(path, fmt.Errorf("%w: unknown body format %q", ErrMalformedDocument, format))
	}

	return Article{
		Slug:         articleSlug,
		Title:        meta.Title,
		Date:         date,
		LastModified: lastModified,
		Categories:   normalizeCategories(append(append([]string(nil), meta.Categories...), meta.Tags...)),
		Description:  meta.Description,
		Format:       format,
		Draft:        meta.Draft,
		Body:         string(body),
		Path:         path,
	}, nil
}

// Body dialects understood by the renderer.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// formatForPath picks the default body dialect from the document's
// extension; an explicit format field always wins.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// resolveSlug picks the explicit slug field, then the document's base name,
// then the title, and normalizes the winner to a URL-safe form.
func resolveSlug(explicit, path, title string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		base := filepath.Base(path)
		candidate = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if candidate == "" || candidate == "." {
		candidate = title
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: cannot derive slug from %q", ErrMalformedDocument, candidate)
	}
	if !slug.IsValid(normalized) {
		return "", fmt.Errorf("%w: slug %q is not URL-safe", ErrMalformedDocument, normalized)
	}
	return normalized, nil
}

// normalizeCategories applies set semantics: lowercase, trim, drop empties,
// deduplicate, sort. Two documents listing the same categories in any order
// load to equal slices. Never returns nil.
func normalizeCategories(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
