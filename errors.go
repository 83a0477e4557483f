package guidepress

import "errors"

// Sentinel errors for export operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Pagination engine failures. All of these are fatal for the request:
	// no partial document is ever returned.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPageSettle     = errors.New("page did not settle before timeout")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
