package render

import (
	"strings"
	"testing"
)

func TestRenderWrapsInContainer(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("# Hello\n\nSome text."), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out, `<div class="chapter-body">`) {
		t.Errorf("output should start with the chapter container, got %q", out[:40])
	}
	if !strings.HasSuffix(out, "</div>") {
		t.Error("output should end with the closing container tag")
	}
	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Errorf("output should contain the heading, got %q", out)
	}
}

func TestRenderGFMTable(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Error("GFM tables should render")
	}
}

func TestHeadingAnchors(t *testing.T) {
	anchors := map[string][]Anchor{
		"advanced-topics": {
			{Match: "Decorators", ID: "decorators"},
			{Match: "Generators", ID: "generators"},
		},
	}
	r := New(anchors)

	md := "# Advanced Topics\n\n## Decorators Explained\n\ntext\n\n## Generators\n\ntext\n\n### Decorators Deep Dive\n\ntext\n\n## Unrelated\n\ntext\n"

	out, err := r.Render([]byte(md), "advanced-topics")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(out, `<h2 id="decorators">Decorators Explained</h2>`) {
		t.Errorf("level-2 heading containing the fragment should get the pinned id, got:\n%s", out)
	}
	if !strings.Contains(out, `<h2 id="generators">Generators</h2>`) {
		t.Errorf("exact-title heading should get the pinned id, got:\n%s", out)
	}
	// Level 3 headings are never matched.
	if strings.Contains(out, `<h3 id=`) {
		t.Error("headings deeper than level 2 must not get anchor ids")
	}
	// Unknown headings get no id at all.
	if !strings.Contains(out, "<h2>Unrelated</h2>") {
		t.Error("non-matching headings must render without an id")
	}
}

func TestHeadingAnchorsOtherChapterUnaffected(t *testing.T) {
	anchors := map[string][]Anchor{
		"advanced-topics": {{Match: "Decorators", ID: "decorators"}},
	}
	r := New(anchors)

	out, err := r.Render([]byte("## Decorators\n"), "functions")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "id=") {
		t.Errorf("anchor table must only apply to its own chapter, got %q", out)
	}
}

func TestHeadingAnchorFirstMatchWins(t *testing.T) {
	anchors := map[string][]Anchor{
		"ch": {
			{Match: "Context", ID: "first"},
			{Match: "Context Managers", ID: "second"},
		},
	}
	r := New(anchors)

	out, err := r.Render([]byte("## Context Managers\n"), "ch")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `id="first"`) {
		t.Errorf("first table entry should win, got %q", out)
	}
}

func TestHeadingMatchIsCaseSensitive(t *testing.T) {
	anchors := map[string][]Anchor{
		"ch": {{Match: "Decorators", ID: "decorators"}},
	}
	r := New(anchors)

	out, err := r.Render([]byte("## decorators\n"), "ch")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "id=") {
		t.Error("matching is case-sensitive; lowercase title must not match")
	}
}

func TestCodeBlockRendering(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("```go\nfmt.Println(\"hi\")\n```\n"), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(out, `<div class="code-block" data-lang="go">`) {
		t.Errorf("code block should be wrapped with its language label, got:\n%s", out)
	}
	if !strings.Contains(out, `<span class="code-lang">go</span>`) {
		t.Error("language label should be visible in the header")
	}
	if !strings.Contains(out, `class="copy-btn" data-code="fmt.Println(&quot;hi&quot;)"`) {
		t.Errorf("copy button should carry the escaped raw code, got:\n%s", out)
	}
	if !strings.Contains(out, `<code class="language-go">`) {
		t.Error("visible block should carry the language class")
	}
}

func TestCodeBlockNoLanguage(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("```\nplain\n```\n"), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "data-lang") {
		t.Error("unlabelled blocks should not carry a data-lang attribute")
	}
	if !strings.Contains(out, `<span class="code-lang">code</span>`) {
		t.Error("unlabelled blocks should fall back to a generic label")
	}
}

func TestCodeBlockEscaping(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("```html\n<script>alert(1)</script>\n```\n"), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(out, "<script>") {
		t.Fatal("raw script tag must never appear in rendered output")
	}
	// Escaped in the visible block.
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("code text should be escaped, got:\n%s", out)
	}
	// Escaped in the copy payload too.
	if !strings.Contains(out, `data-code="&lt;script&gt;alert(1)&lt;/script&gt;"`) {
		t.Errorf("copy payload should be escaped, got:\n%s", out)
	}
}

func TestCodeBlockTrimsPayload(t *testing.T) {
	r := New(nil)
	out, err := r.Render([]byte("```\n\n  x = 1\n\n```\n"), "intro")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `data-code="x = 1"`) {
		t.Errorf("copy payload should be trimmed, got:\n%s", out)
	}
}

func TestEscapeCode(t *testing.T) {
	tests := []struct{ in, want string }{
		{`a & b`, `a &amp; b`},
		{`<tag>`, `&lt;tag&gt;`},
		{`"quoted"`, `&quot;quoted&quot;`},
		{`it's`, `it&#39;s`},
		{`plain`, `plain`},
	}
	for _, tt := range tests {
		if got := EscapeCode(tt.in); got != tt.want {
			t.Errorf("EscapeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
