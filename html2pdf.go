package guidepress

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/guidepress/guidepress/internal/fileutil"
)

// pdfPaginator abstracts styled-markup to PDF conversion to allow different
// backends (and browserless tests).
type pdfPaginator interface {
	Paginate(ctx context.Context, markup string, opts *paginateOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *paginateOptions) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfPaginator = (*rodPaginator)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// paginateOptions carries the per-export header/footer band content. Page
// geometry is fixed (see types.go) and intentionally not an option.
type paginateOptions struct {
	HeaderTitle string // header band text, repeated on every page
	FooterDate  string // left side of the footer band
}

// bandFontFamily is the font stack for the header and footer bands.
const bandFontFamily = "'Helvetica Neue', Arial, sans-serif"

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome, waits for the
// layout surface to settle, and serializes it to paginated PDF bytes. The
// page is released on every exit path.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *paginateOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Bound the settle wait by the context deadline or the default timeout.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	bounded := page.Timeout(timeout)
	if err := bounded.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	// Settle: no pending loads or scheduled work before measuring pages.
	if err := bounded.WaitIdle(timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageSettle, err)
	}

	// Check context after the settle wait
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF with the fixed A4
// geometry and the repeating header/footer bands.
func buildPDFOptions(opts *paginateOptions) *proto.PagePrintToPDF {
	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginTopPx / pxPerInch),
		MarginRight:     floatPtr(marginRightPx / pxPerInch),
		MarginBottom:    floatPtr(marginBottomPx / pxPerInch),
		MarginLeft:      floatPtr(marginLeftPx / pxPerInch),
		Scale:           floatPtr(contentScale),
		PrintBackground: true,
	}

	if opts != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = buildHeaderTemplate(opts.HeaderTitle)
		pdfOpts.FooterTemplate = buildFooterTemplate(opts.FooterDate)
	}

	return pdfOpts
}

// buildHeaderTemplate generates the repeating header band: one line of bold
// white text on a gradient bar. Chrome requires inline styles here.
func buildHeaderTemplate(title string) string {
	if title == "" {
		return "<span></span>"
	}
	return fmt.Sprintf(
		`<div style="width: 100%%; font-size: 9px; font-family: %s; font-weight: bold; color: #ffffff; background: linear-gradient(90deg, #2a3151, #4f5ef7); -webkit-print-color-adjust: exact; padding: 5px 35px;">%s</div>`,
		bandFontFamily, html.EscapeString(title))
}

// buildFooterTemplate generates the repeating footer band: generation date
// on the left, "Page X of Y" on the right. Chrome substitutes the
// pageNumber/totalPages span classes per page after global layout, so the
// total is correct on every page including the first.
func buildFooterTemplate(date string) string {
	return fmt.Sprintf(
		`<div style="width: 100%%; font-size: 8px; font-family: %s; color: #8a90a8; padding: 0 35px; display: flex; justify-content: space-between;"><span>%s</span><span>Page <span class="pageNumber"></span> of <span class="totalPages"></span></span></div>`,
		bandFontFamily, html.EscapeString(date))
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodPaginator converts styled markup to PDF using headless Chrome via go-rod.
type rodPaginator struct {
	renderer pdfRenderer
	closer   interface{ Close() error }
}

// newRodPaginator creates a rodPaginator with the production renderer.
func newRodPaginator(timeout time.Duration) *rodPaginator {
	r := newRodRenderer(timeout)
	return &rodPaginator{renderer: r, closer: r}
}

// Paginate writes the markup to a temp file and renders it to PDF bytes.
func (p *rodPaginator) Paginate(ctx context.Context, markup string, opts *paginateOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(markup, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return p.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (p *rodPaginator) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}
