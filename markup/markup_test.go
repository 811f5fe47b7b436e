package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderPassthrough(t *testing.T) {
	body := `<h2 id="a">A heading</h2><p>Plain content with a <a href="/x">link</a>.</p>`
	got, err := New(Options{}).Render(body)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != body {
		t.Errorf("content without directives or inline markers changed:\ngot  %q\nwant %q", got, body)
	}
}

func TestRenderInlineConventions(t *testing.T) {
	got, err := New(Options{}).Render(`<p>Use **sieve** scripts, see [docs](https://example.com).</p>`)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "<strong>sieve</strong>") {
		t.Errorf("bold not applied: %q", got)
	}
	if !strings.Contains(got, `<a href="https://example.com">docs</a>`) {
		t.Errorf("link not applied: %q", got)
	}
}

func TestRenderImageDirective(t *testing.T) {
	got, err := New(Options{}).Render(`{{< img src="/public/key.png" width=480 alt="key exchange" >}}`)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{`src="/public/key.png"`, `width="480"`, `alt="key exchange"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestRenderImageMissingSrc(t *testing.T) {
	_, err := New(Options{}).Render(`{{< img width=480 alt="no source" >}}`)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("err = %v, want ErrMissingAttribute", err)
	}
}

func TestRenderImageSizer(t *testing.T) {
	opts := Options{
		ImageSizer: func(src string) (int, int, bool) {
			if src != "/public/key.png" {
				t.Errorf("sizer called with %q", src)
			}
			return 640, 480, true
		},
	}
	got, err := New(opts).Render(`{{< img src="/public/key.png" >}}`)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, `width="640" height="480"`) {
		t.Errorf("probed dimensions missing: %q", got)
	}
}

func TestRenderFigureDirective(t *testing.T) {
	got, err := New(Options{}).Render(`{{< figure src="/a.png" >}}A caption{{< /figure >}}`)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "<figure>") || !strings.Contains(got, "<figcaption>A caption</figcaption>") {
		t.Errorf("figure markup missing: %q", got)
	}
}

func TestRenderTableOfContents(t *testing.T) {
	body := "{{< toc >}}\n<h2>Handshake</h2>\n<p>x</p>\n<h2>Key Rotation</h2>\n"
	got, err := New(Options{}).Render(body)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	nav := strings.Index(got, `<nav class="toc">`)
	firstHeading := strings.Index(got, "<h2")
	if nav < 0 {
		t.Fatalf("no toc nav in output: %q", got)
	}
	if nav > firstHeading {
		t.Error("toc not at the directive's original position (before the headings)")
	}

	handshake := strings.Index(got, ">Handshake</a>")
	rotation := strings.Index(got, ">Key Rotation</a>")
	if handshake < 0 || rotation < 0 {
		t.Fatalf("toc missing heading entries: %q", got)
	}
	if handshake > rotation {
		t.Error("toc entries out of document order")
	}
	if !strings.Contains(got, `<h2 id="handshake">`) {
		t.Errorf("heading did not get a linkable id: %q", got)
	}
}

func TestRenderTocNoHeadings(t *testing.T) {
	got, err := New(Options{}).Render("{{< toc >}}\n<p>no headings here</p>")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(got, "toc") || strings.Contains(got, "markup:") {
		t.Errorf("directive or placeholder leaked into output: %q", got)
	}
}

func TestRenderUnknownDirectiveLenient(t *testing.T) {
	body := `<p>{{< youtube id="abc" >}}</p>`
	got, err := New(Options{}).Render(body)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, `{{< youtube id="abc" >}}`) {
		t.Errorf("unknown directive should pass through literally: %q", got)
	}
}

func TestRenderUnknownDirectiveStrict(t *testing.T) {
	_, err := New(Options{Strict: true}).Render(`{{< youtube id="abc" >}}`)
	if !errors.Is(err, ErrUnknownDirective) {
		t.Fatalf("err = %v, want ErrUnknownDirective", err)
	}
}

func TestRenderMarkdownFormat(t *testing.T) {
	body := "{{< toc >}}\n\n## Filtering rules\n\nSome *emphasis* here.\n"
	got, err := New(Options{Format: "markdown"}).Render(body)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Errorf("markdown emphasis missing: %q", got)
	}
	if !strings.Contains(got, "Filtering rules</h2>") {
		t.Errorf("markdown heading missing: %q", got)
	}
	if !strings.Contains(got, `<nav class="toc">`) {
		t.Errorf("toc missing from markdown render: %q", got)
	}
	if !strings.Contains(got, `href="#filtering-rules"`) {
		t.Errorf("toc should link goldmark's auto heading id: %q", got)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "asciidoc"}).Render("x"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
