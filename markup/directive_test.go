package markup

import (
	"strings"
	"testing"
)

func TestExtractDirectiveArgs(t *testing.T) {
	body := `before {{< img src="/a.png" alt='key exchange' width=300 >}} after`
	stripped, directives := extractDirectives(body)

	if len(directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(directives))
	}
	d := directives[0]
	if d.Name != "img" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.Args["src"] != "/a.png" {
		t.Errorf("src = %q", d.Args["src"])
	}
	if d.Args["alt"] != "key exchange" {
		t.Errorf("alt = %q", d.Args["alt"])
	}
	if d.Args["width"] != "300" {
		t.Errorf("width = %q", d.Args["width"])
	}
	if d.Block {
		t.Error("Block = true, want self-closing")
	}
	want := "before " + placeholder(0) + " after"
	if stripped != want {
		t.Errorf("stripped = %q, want %q", stripped, want)
	}
}

func TestExtractBlockDirective(t *testing.T) {
	body := `{{< figure src="/a.png" >}}My caption{{< /figure >}}`
	stripped, directives := extractDirectives(body)

	if len(directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(directives))
	}
	d := directives[0]
	if !d.Block {
		t.Error("Block = false, want block form")
	}
	if d.Inner != "My caption" {
		t.Errorf("Inner = %q", d.Inner)
	}
	if strings.Contains(stripped, "caption") {
		t.Errorf("stripped still contains inner text: %q", stripped)
	}
	if !strings.Contains(d.Raw, "{{< /figure >}}") {
		t.Errorf("Raw should span through the closing tag: %q", d.Raw)
	}
}

func TestExtractMultipleDirectivesInOrder(t *testing.T) {
	body := "{{< toc >}}\n<h2>A</h2>\n{{< img src=\"/x.png\" >}}\n"
	stripped, directives := extractDirectives(body)

	if len(directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(directives))
	}
	if directives[0].Name != "toc" || directives[1].Name != "img" {
		t.Errorf("names = %q, %q", directives[0].Name, directives[1].Name)
	}
	if strings.Index(stripped, placeholder(0)) > strings.Index(stripped, placeholder(1)) {
		t.Error("placeholders out of document order")
	}
}

func TestExtractLeavesNonDirectiveTextAlone(t *testing.T) {
	body := "a {{ not a directive }} and {{< unterminated"
	stripped, directives := extractDirectives(body)
	if len(directives) != 0 {
		t.Fatalf("got %d directives, want 0", len(directives))
	}
	if stripped != body {
		t.Errorf("stripped = %q, want input unchanged", stripped)
	}
}
