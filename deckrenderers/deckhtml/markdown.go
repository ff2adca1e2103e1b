package deckhtml

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

var markdownRenderer goldmark.Markdown

func init() {
	markdownRenderer = goldmark.New(
		goldmark.WithRendererOptions(
			goldmarkHtml.WithXHTML(),
			renderer.WithNodeRenderers(
				util.Prioritized(rawHTMLRenderer{}, 100),
			),
		),
		goldmark.WithExtensions(
			extension.Strikethrough,
		),
	)
}

// rawHTMLRenderer writes inline HTML back as escaped text so tags in slide
// lines show up verbatim.
type rawHTMLRenderer struct{}

func (rawHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, renderRawHTML)
}

func renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		_, err := w.WriteString(html.EscapeString(string(seg.Value(source))))
		if err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkSkipChildren, nil
}

// renderInline renders a single body line as inline markdown: emphasis, code,
// links and strikethrough. Inline HTML is escaped. Anything that would become
// block markup (headings, lists, quotes, HTML blocks) is escaped verbatim instead.
func renderInline(line string) string {
	var buf bytes.Buffer
	err := markdownRenderer.Convert([]byte(line), &buf)
	if err != nil {
		return html.EscapeString(line)
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "<p>") || !strings.HasSuffix(out, "</p>") || strings.Count(out, "<p>") != 1 {
		return html.EscapeString(line)
	}
	return strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
}
