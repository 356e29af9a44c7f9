// Package render converts chapter markdown into the HTML fragments the
// reader displays. It delegates parsing to goldmark and overrides two
// rendering rules: pinned heading anchors and copyable code blocks.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Anchor assigns a fixed element id to headings whose text contains Match.
type Anchor struct {
	Match string
	ID    string
}

// chapterIDKey carries the chapter id from Render into the AST transformer.
var chapterIDKey = parser.NewContextKey()

// Renderer renders chapter markdown to HTML. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer. anchors maps chapter ids to their heading anchor
// tables; chapters without a table get no heading ids at all.
func New(anchors map[string][]Anchor) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&anchorTransformer{tables: anchors}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{}, 100),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown to HTML for the given chapter. The result is
// always wrapped in a single top-level container element.
func (r *Renderer) Render(markdown []byte, chapterID string) (string, error) {
	pc := parser.NewContext()
	pc.Set(chapterIDKey, chapterID)

	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return `<div class="chapter-body">` + "\n" + buf.String() + `</div>`, nil
}

// anchorTransformer pins configured anchor ids on headings during parsing.
// Only headings of level one and two are considered, matching is a
// case-sensitive substring check, and the first matching table entry wins.
type anchorTransformer struct {
	tables map[string][]Anchor
}

func (t *anchorTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	chapterID, _ := pc.Get(chapterIDKey).(string)
	rules := t.tables[chapterID]
	if len(rules) == 0 {
		return
	}

	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 2 {
			return ast.WalkContinue, nil
		}
		title := nodeText(h, source)
		for _, rule := range rules {
			if strings.Contains(title, rule.Match) {
				h.SetAttributeString("id", []byte(rule.ID))
				break
			}
		}
		return ast.WalkContinue, nil
	})
}

// nodeText collects the plain text of a node's inline children.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

// codeBlockRenderer replaces goldmark's fenced code block output with a
// container carrying the language label and a copy control. The raw code is
// HTML-escaped both in the visible block and in the copy payload.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	lang := ""
	if l := n.Language(source); l != nil {
		lang = string(l)
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}
	escaped := EscapeCode(strings.TrimSpace(code.String()))

	if lang != "" {
		_, _ = w.WriteString(`<div class="code-block" data-lang="` + EscapeCode(lang) + `">`)
	} else {
		_, _ = w.WriteString(`<div class="code-block">`)
	}
	_, _ = w.WriteString(`<div class="code-block-header">`)
	_, _ = w.WriteString(`<span class="code-lang">`)
	if lang != "" {
		_, _ = w.WriteString(EscapeCode(lang))
	} else {
		_, _ = w.WriteString("code")
	}
	_, _ = w.WriteString(`</span>`)
	_, _ = w.WriteString(`<button type="button" class="copy-btn" data-code="` + escaped + `">Copy</button>`)
	_, _ = w.WriteString(`</div>`)
	if lang != "" {
		_, _ = w.WriteString(`<pre><code class="language-` + EscapeCode(lang) + `">`)
	} else {
		_, _ = w.WriteString(`<pre><code>`)
	}
	_, _ = w.WriteString(escaped)
	_, _ = w.WriteString("</code></pre></div>\n")

	return ast.WalkContinue, nil
}

var codeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeCode escapes the characters that must not appear raw inside code
// blocks or attribute values: & < > " '.
func EscapeCode(s string) string {
	return codeEscaper.Replace(s)
}
