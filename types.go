package guidepress

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultFilename is the suggested filename when the caller supplies none.
const DefaultFilename = "agents-md-guide.pdf"

// defaultTimeout bounds one export's layout and serialization work.
const defaultTimeout = 60 * time.Second

// Page geometry. The exported document has exactly one physical form: A4
// with fixed margins and a fixed content scale. Margins are expressed in
// pixels and converted at CSS reference resolution (96 dpi) for Chrome.
const (
	paperWidthInches  = 8.27  // A4
	paperHeightInches = 11.69 // A4

	marginTopPx    = 50
	marginRightPx  = 35
	marginBottomPx = 50
	marginLeftPx   = 35

	pxPerInch = 96.0

	// contentScale fits slightly more content per page without changing
	// font sizes in the source markup.
	contentScale = 0.95
)

// ExportResult is the outcome of one successful export.
type ExportResult struct {
	// PDF is the complete paginated document.
	PDF []byte
	// ByteLength is len(PDF).
	ByteLength int
	// PageCount is read back from the produced document after layout; it
	// is not predictable ahead of pagination.
	PageCount int
	// HighlightFailures counts code blocks that rendered unhighlighted.
	HighlightFailures int
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTimeout sets the per-export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("guidepress: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithLogger sets the logger used for composition trace events and highlight
// degradation warnings. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Exporter) {
		e.log = log
	}
}
