package pipeline

import (
	"context"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/guidepress/guidepress/internal/assets"
)

// WebConverter renders the guide for the interactive browser view. Unlike the
// export path, highlighting happens inline via the goldmark extension with
// CSS classes; the browser page has no use for failure accounting.
type WebConverter struct {
	converter   HTMLConverter
	cssInjector CSSInjector
	stylesheet  string
}

// NewWebConverter creates a WebConverter for the server-rendered HTML page.
func NewWebConverter(documentTitle string) *WebConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // external stylesheet keeps the page small
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &WebConverter{
		converter:   &GoldmarkConverter{md: md, title: documentTitle},
		cssInjector: &CSSInjection{},
		stylesheet:  assets.WebStylesheet() + "\n" + ChromaStylesheet(),
	}
}

// ToHTML renders Markdown to the styled browser page.
func (w *WebConverter) ToHTML(ctx context.Context, text string) (string, error) {
	htmlContent, err := w.converter.ToHTML(ctx, text)
	if err != nil {
		return "", err
	}
	return w.cssInjector.InjectCSS(ctx, htmlContent, w.stylesheet), nil
}
