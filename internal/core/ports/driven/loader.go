package driven

import (
	"context"

	"github.com/hireloop/screener/internal/core/domain"
)

// Loader extracts text from one resume file format.
// Loaders are selected by lowercased file extension.
type Loader interface {
	// Extensions returns the file extensions this loader handles,
	// including the leading dot (e.g., ".pdf").
	Extensions() []string

	// Load reads the file and produces a Document with extracted text.
	Load(ctx context.Context, path string) (*domain.Document, error)
}
