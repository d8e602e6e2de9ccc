package driven

import (
	"context"

	"github.com/hireloop/screener/internal/core/domain"
)

// ChunkIndex is the persistent embedding index: it stores (vector, text,
// metadata) triples keyed by chunk identity and answers nearest-neighbour
// queries over the stored vectors.
//
// Upsert is insert-or-replace by chunk ID, so rebuilding the same corpus
// against an existing persistence location replaces prior entries instead
// of appending duplicates.
type ChunkIndex interface {
	// Upsert stores chunks with their embeddings, replacing any chunk
	// with the same ID.
	Upsert(ctx context.Context, chunks []domain.Chunk) error

	// Search returns the k chunks most similar to the query vector,
	// ordered by decreasing cosine similarity. Ties break by
	// (document path, position) ascending so results are reproducible.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error)

	// Count reports the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// DeleteDocument removes all chunks belonging to a document.
	DeleteDocument(ctx context.Context, documentID string) error

	// Close flushes and releases the underlying storage.
	Close() error
}
