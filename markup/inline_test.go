package markup

import "testing"

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		if got := formatInline(tt.input); got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		if got := formatInline(tt.input); got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCode(t *testing.T) {
	if got := formatInline("run `inkpress build` now"); got != "run <code>inkpress build</code> now" {
		t.Errorf("got %q", got)
	}
}

func TestFormatInlineLink(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[text](https://example.com)", `<a href="https://example.com">text</a>`},
		{"see [the repo](https://example.com/x) here", `see <a href="https://example.com/x">the repo</a> here`},
	}
	for _, tt := range tests {
		if got := formatInline(tt.input); got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestApplyOutsideTagsSkipsAttributes(t *testing.T) {
	in := `<a href="https://example.com/a_b_c">x **y** z</a>`
	got := applyOutsideTags(in, formatInline)
	want := `<a href="https://example.com/a_b_c">x <strong>y</strong> z</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatHTMLBodySkipsPre(t *testing.T) {
	in := "<p>**bold**</p><pre><code>**not bold**</code></pre><p>**also bold**</p>"
	got := formatHTMLBody(in)
	want := "<p><strong>bold</strong></p><pre><code>**not bold**</code></pre><p><strong>also bold</strong></p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
