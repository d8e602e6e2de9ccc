package driving

import (
	"context"

	"github.com/hireloop/screener/internal/core/domain"
)

// Indexer builds the persistent embedding index from a resume directory.
type Indexer interface {
	// Build loads, chunks, embeds and indexes every supported file in dir.
	// Returns an IndexReport describing what was processed.
	Build(ctx context.Context, dir string) (*IndexReport, error)
}

// IndexReport summarises one index build.
type IndexReport struct {
	// DocumentsLoaded is the number of resumes successfully extracted.
	DocumentsLoaded int

	// DocumentsSkipped is the number of files skipped (unsupported type
	// or per-file load failure).
	DocumentsSkipped int

	// ChunksIndexed is the number of chunks embedded and stored.
	ChunksIndexed int
}

// Retriever answers free-text similarity queries over the built index.
type Retriever interface {
	// Retrieve returns the top-k most similar chunks for the query,
	// ordered by decreasing similarity.
	Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error)
}

// Rater scores the indexed candidate corpus against screening criteria.
type Rater interface {
	// Rate retrieves relevant context and asks the language model for a
	// structured two-field rating.
	Rate(ctx context.Context, criteria domain.Criteria) (*domain.Rating, error)
}
