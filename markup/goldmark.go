package markup

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// mdEngine converts markdown-format bodies. Stateless, so one instance is
// shared across renders. Auto heading IDs give the table of contents its
// anchors; WithUnsafe keeps embedded HTML (and directive placeholders) intact.
var mdEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

func convertMarkdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := mdEngine.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}
