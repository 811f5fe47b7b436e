package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Directive is one shortcode occurrence in a body, e.g.
//
//	{{< img src="/public/key.png" width=480 alt="key exchange" >}}
//
// Block directives carry their inner text and are written with an explicit
// closing tag: {{< figure src="..." >}}caption{{< /figure >}}.
type Directive struct {
	Name  string
	Args  map[string]string
	Block bool
	Inner string
	Raw   string // original text, used for lenient pass-through
}

var (
	reDirective = regexp.MustCompile(`\{\{<\s*([a-zA-Z][\w-]*)\s*((?:[^>]|>[^}])*?)\s*>\}\}`)
	reAttr      = regexp.MustCompile(`([\w-]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

// placeholder returns the opaque marker substituted for directive i during
// body conversion. HTML comments survive both the html dialect pass and the
// markdown engine untouched.
func placeholder(i int) string {
	return "<!--markup:" + strconv.Itoa(i) + "-->"
}

// extractDirectives replaces every directive in body with an indexed
// placeholder and returns the stripped body plus the directives in document
// order. Text that merely resembles a directive but does not parse is left
// alone and passes through as literal content.
func extractDirectives(body string) (string, []Directive) {
	var directives []Directive
	var out strings.Builder
	rest := body
	for {
		loc := reDirective.FindStringSubmatchIndex(rest)
		if loc == nil {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:loc[0]])

		raw := rest[loc[0]:loc[1]]
		name := rest[loc[2]:loc[3]]
		argText := rest[loc[4]:loc[5]]
		rest = rest[loc[1]:]

		d := Directive{
			Name: strings.ToLower(name),
			Args: parseArgs(argText),
			Raw:  raw,
		}

		// Look for an explicit closing tag; if present the directive is a
		// block and owns everything up to the close.
		if closeLoc := closeTag(d.Name).FindStringIndex(rest); closeLoc != nil {
			d.Block = true
			d.Inner = strings.TrimSpace(rest[:closeLoc[0]])
			d.Raw = raw + rest[:closeLoc[1]]
			rest = rest[closeLoc[1]:]
		}

		out.WriteString(placeholder(len(directives)))
		directives = append(directives, d)
	}
	return out.String(), directives
}

func parseArgs(text string) map[string]string {
	args := make(map[string]string)
	for _, m := range reAttr.FindAllStringSubmatch(text, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		args[strings.ToLower(m[1])] = value
	}
	return args
}

func closeTag(name string) *regexp.Regexp {
	return regexp.MustCompile(`\{\{<\s*/\s*` + regexp.QuoteMeta(name) + `\s*>\}\}`)
}
