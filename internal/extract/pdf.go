package extract

import (
	"context"

	"github.com/hireloop/screener/internal/loaders/pdf"
)

// TextFromPDF returns the page-ordered concatenated text of the PDF at
// path. A read or extraction failure is reported as an error, so callers
// can distinguish an empty document from a failed extraction.
func TextFromPDF(ctx context.Context, path string) (string, error) {
	return pdf.New().Text(ctx, path)
}
