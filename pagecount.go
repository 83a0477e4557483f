package guidepress

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// countPages reads the page count back from produced PDF bytes. The count is
// determined by the layout engine and cannot be predicted ahead of
// pagination, so it is introspected after the fact.
func countPages(data []byte) (count int, err error) {
	// The parser panics on some malformed inputs; a bad count must never
	// fail an otherwise successful export.
	defer func() {
		if r := recover(); r != nil {
			count, err = 0, fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("parsing PDF: %w", err)
	}
	return reader.NumPage(), nil
}
