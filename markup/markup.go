// Package markup renders article body text into HTML fragments. The body
// dialect is a restricted subset of HTML plus inline emphasis/link
// conventions and shortcode-style directives such as {{< toc >}} and
// {{< img src="..." >}}; a markdown dialect is also supported. Rendering
// never alters the article record it came from.
package markup

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

var (
	// ErrMissingAttribute reports a directive missing a required attribute.
	ErrMissingAttribute = errors.New("markup: missing attribute")
	// ErrUnknownDirective reports an unrecognized directive in strict mode.
	ErrUnknownDirective = errors.New("markup: unknown directive")
)

// ImageSizer resolves intrinsic dimensions for a local image path. A false
// return means the dimensions are unknown and the attribute is omitted.
type ImageSizer func(src string) (width, height int, ok bool)

// Options configures a Renderer.
type Options struct {
	// Format selects the body dialect: "html" (default) or "markdown".
	Format string
	// Strict makes unrecognized directives fail with ErrUnknownDirective.
	// The default is lenient: the directive text passes through literally.
	Strict bool
	// ImageSizer, when set, fills in width/height for image directives that
	// do not declare them.
	ImageSizer ImageSizer
}

// Renderer expands directives and converts one body dialect to HTML.
// The zero value renders the html dialect leniently.
type Renderer struct {
	opts Options
}

// New returns a Renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render produces the final HTML fragment for body. Directives are pulled
// out first so the dialect conversion never mangles them; headings are then
// collected from the converted HTML so a table-of-contents directive can
// reference headings that appear after it.
func (r *Renderer) Render(body string) (string, error) {
	stripped, directives := extractDirectives(body)

	var converted string
	switch r.opts.Format {
	case "", "html":
		converted = ensureHeadingIDs(formatHTMLBody(stripped))
	case "markdown":
		var err error
		converted, err = convertMarkdown(stripped)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("markup: unknown format %q", r.opts.Format)
	}

	headings := collectHeadings(converted)

	for i, d := range directives {
		fragment, err := r.expand(d, headings)
		if err != nil {
			return "", err
		}
		converted = strings.Replace(converted, placeholder(i), fragment, 1)
	}
	return converted, nil
}

func (r *Renderer) expand(d Directive, headings []Heading) (string, error) {
	switch d.Name {
	case "toc":
		return tocHTML(headings), nil
	case "img":
		return r.imageHTML(d, false)
	case "figure":
		return r.imageHTML(d, true)
	default:
		if r.opts.Strict {
			return "", fmt.Errorf("%w: %q", ErrUnknownDirective, d.Name)
		}
		return d.Raw, nil
	}
}

// imageHTML builds an <img> element from directive attributes. src is
// required; width/height come from the directive or, failing that, from the
// image sizer. figure form wraps the image with an optional caption taken
// from the caption attribute or the block's inner text.
func (r *Renderer) imageHTML(d Directive, figure bool) (string, error) {
	src, ok := d.Args["src"]
	if !ok || strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%w: %s directive requires src", ErrMissingAttribute, d.Name)
	}

	var b strings.Builder
	b.WriteString(`<img src="` + html.EscapeString(src) + `"`)
	b.WriteString(` alt="` + html.EscapeString(d.Args["alt"]) + `"`)

	width, height := d.Args["width"], d.Args["height"]
	if width == "" && height == "" && r.opts.ImageSizer != nil {
		if w, h, ok := r.opts.ImageSizer(src); ok {
			b.WriteString(fmt.Sprintf(` width="%d" height="%d"`, w, h))
		}
	} else {
		if width != "" {
			b.WriteString(` width="` + html.EscapeString(width) + `"`)
		}
		if height != "" {
			b.WriteString(` height="` + html.EscapeString(height) + `"`)
		}
	}
	b.WriteString(` loading="lazy">`)

	if !figure {
		return b.String(), nil
	}

	caption := d.Args["caption"]
	if caption == "" {
		caption = d.Inner
	}
	out := `<figure>` + b.String()
	if caption != "" {
		out += `<figcaption>` + html.EscapeString(caption) + `</figcaption>`
	}
	return out + `</figure>`, nil
}
