package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHighlighter_Highlight_KnownLanguage(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(zerolog.Nop())
	in := `<pre><code class="language-go">fmt.Println(&quot;hi&quot;)</code></pre>`

	got, failures := h.Highlight(in)
	if failures != 0 {
		t.Errorf("failures = %d, want 0", failures)
	}
	if got == in {
		t.Error("known language block was not rewritten")
	}
	// Inline styles, so the output needs no external stylesheet.
	if !strings.Contains(got, "style=") {
		t.Errorf("highlighted block carries no inline styles: %q", got)
	}
}

func TestHighlighter_Highlight_UnknownLanguage(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(zerolog.Nop())
	in := `<pre><code class="language-nosuchlang">plain text content</code></pre>`

	got, failures := h.Highlight(in)
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
	// The block must survive untouched as plain code.
	if got != in {
		t.Errorf("fallback block was modified: %q", got)
	}
}

func TestHighlighter_Highlight_MixedBlocks(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(zerolog.Nop())
	in := `<pre><code class="language-go">var x int</code></pre>` +
		`<p>between</p>` +
		`<pre><code class="language-zzz">mystery</code></pre>` +
		`<pre><code class="language-json">{&quot;k&quot;: 1}</code></pre>`

	got, failures := h.Highlight(in)
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
	if !strings.Contains(got, "<p>between</p>") {
		t.Error("non-code content was disturbed")
	}
	if !strings.Contains(got, "mystery") {
		t.Error("fallback block content lost")
	}
}

func TestHighlighter_Highlight_NoCodeBlocks(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(zerolog.Nop())
	in := "<p>No code here.</p>"

	got, failures := h.Highlight(in)
	if got != in {
		t.Errorf("content without code blocks changed: %q", got)
	}
	if failures != 0 {
		t.Errorf("failures = %d, want 0", failures)
	}
}

func TestHighlighter_Highlight_UnescapesEntities(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(zerolog.Nop())
	// Goldmark escapes code payloads; the highlighter must decode before lexing.
	in := `<pre><code class="language-go">if a &lt; b &amp;&amp; c &gt; d {}</code></pre>`

	got, failures := h.Highlight(in)
	if failures != 0 {
		t.Fatalf("failures = %d, want 0", failures)
	}
	if strings.Contains(got, "&amp;amp;") {
		t.Errorf("entities were double-escaped: %q", got)
	}
}

func TestHighlighter_NeverFailsPipeline(t *testing.T) {
	t.Parallel()

	// A full renderer pass over an unrecognized language must complete and
	// report the fallback, not error.
	r := NewRenderer("Test", zerolog.Nop())
	doc, err := r.ParseAndStyle(context.Background(), "```nosuchlang\nweird content\n```")
	if err != nil {
		t.Fatalf("ParseAndStyle() error = %v", err)
	}
	if doc.HighlightFailures != 1 {
		t.Errorf("HighlightFailures = %d, want 1", doc.HighlightFailures)
	}
	if !strings.Contains(doc.Markup, "weird content") {
		t.Error("fallback block dropped from output")
	}
}

func TestChromaStylesheet(t *testing.T) {
	t.Parallel()

	css := ChromaStylesheet()
	if !strings.Contains(css, ".chroma") {
		t.Errorf("stylesheet missing chroma class rules: %q", css)
	}
}
