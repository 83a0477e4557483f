// Package guidepress composes the AI-coding-assistants guide as Markdown and
// renders it to a styled, paginated PDF using headless Chrome.
//
// # Quick Start
//
// Create an exporter, export the guide, and close when done:
//
//	exp := guidepress.NewExporter()
//	defer exp.Close()
//
//	result, err := exp.Export(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("guide.pdf", result.PDF, 0644)
//
// ExportMarkdown renders caller-supplied Markdown through the same pipeline,
// which is what the HTTP export endpoint uses.
//
// # Pipeline
//
// The export runs three stages, strictly one-directional:
//
//  1. Content Composer (internal/content): the fixed 13-section catalogue is
//     serialized to one Markdown document.
//  2. Structured-Text Renderer (internal/pipeline): Goldmark parses the
//     Markdown, the print stylesheet is embedded, and code blocks are
//     syntax-highlighted in place with per-block fallback.
//  3. Pagination Engine (html2pdf.go): headless Chrome (go-rod) lays the
//     styled document out on A4 pages with a repeating header band and a
//     footer band whose page-number tokens resolve after global layout.
//
// # Parallel Exports
//
// Each Exporter owns one browser. For concurrent requests use ExporterPool,
// which caps live browser instances:
//
//	pool := guidepress.NewExporterPool(guidepress.ResolvePoolSize(0))
//	defer pool.Close()
//
//	exp := pool.Acquire()
//	defer pool.Release(exp)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. go-rod downloads a managed
// Chromium on first run. Set ROD_BROWSER_BIN to use a pre-installed binary;
// sandboxing is disabled automatically in CI and containerized environments.
package guidepress
