package pipeline

import (
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"
)

// highlightStyle is the chroma style used for exported documents. Chosen for
// print contrast on a white page.
const highlightStyle = "github"

// codeBlockPattern matches Goldmark's fenced-code output. Captures:
// 1=language tag, 2=escaped code payload.
var codeBlockPattern = regexp.MustCompile(`(?s)<pre><code class="language-([a-zA-Z0-9#+_.-]+)">(.*?)</code></pre>`)

// Highlighter replaces raw code blocks in rendered HTML with syntax
// highlighted markup. A block whose language is unrecognized, or whose
// highlighting fails for any reason, is left as plain code; highlighting
// never fails the pipeline.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	log       zerolog.Logger
}

// NewHighlighter creates a Highlighter with inline styles (no external
// stylesheet needed in the output document).
func NewHighlighter(log zerolog.Logger) *Highlighter {
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
		style:     style,
		log:       log,
	}
}

// Highlight post-processes htmlContent, returning the rewritten markup and
// the number of code blocks that fell back to plain rendering.
func (h *Highlighter) Highlight(htmlContent string) (string, int) {
	failures := 0

	out := codeBlockPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		sub := codeBlockPattern.FindStringSubmatch(match)
		lang, escaped := sub[1], sub[2]

		highlighted, ok := h.highlightBlock(lang, html.UnescapeString(escaped))
		if !ok {
			failures++
			h.log.Warn().Str("language", lang).Msg("code block left unhighlighted")
			return match
		}
		return highlighted
	})

	return out, failures
}

// ChromaStylesheet returns the CSS rules for class-based chroma output, as
// used by the web view (the export path uses inline styles instead).
func ChromaStylesheet() string {
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	_ = formatter.WriteCSS(&sb, style)
	return sb.String()
}

// highlightBlock highlights one block. Returns ok=false on any failure,
// including panics from the lexer or formatter.
func (h *Highlighter) highlightBlock(lang, code string) (result string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result, ok = "", false
		}
	}()

	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return "", false
	}
	return sb.String(), true
}
