package markup

import (
	"regexp"
	"strings"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`\b_([^_]+)_\b`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// formatInline applies the dialect's inline conventions (bold, italic,
// inline code, links) to s. The input is already HTML, so no escaping is
// performed; the conventions only add tags.
func formatInline(s string) string {
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reBoldUnderscore.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reItalicUnderscore.ReplaceAllString(s, "<em>$1</em>")
	s = reInlineCode.ReplaceAllString(s, "<code>$1</code>")
	s = reLink.ReplaceAllString(s, `<a href="$2">$1</a>`)
	return s
}

// applyOutsideTags applies fn only to text segments outside HTML tags, so
// the inline regexes never touch URLs inside href attributes, etc.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// formatHTMLBody runs the inline conventions over an html-dialect body,
// skipping the contents of <pre> blocks.
func formatHTMLBody(body string) string {
	var out strings.Builder
	rest := body
	for {
		start := indexFold(rest, "<pre")
		if start < 0 {
			out.WriteString(applyOutsideTags(rest, formatInline))
			break
		}
		out.WriteString(applyOutsideTags(rest[:start], formatInline))
		end := indexFold(rest[start:], "</pre>")
		if end < 0 {
			out.WriteString(rest[start:])
			break
		}
		end += start + len("</pre>")
		out.WriteString(rest[start:end])
		rest = rest[end:]
	}
	return out.String()
}

func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}
