package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
)

// md renders catalog copy. Raw HTML in the source is dropped, which makes
// the output safe to embed unescaped.
var md = goldmark.New()

// inlineMarkdown renders src as inline Markdown: emphasis, links and code
// spans are kept, the enclosing paragraph is stripped.
func inlineMarkdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return g.Raw(out)
}
