package domain

import "fmt"

// Document represents a single resume after text extraction.
// It is the loader's output and is discarded once chunked.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Path is the source file path the document was loaded from.
	Path string

	// Content is the full extracted text.
	Content string

	// Metadata contains loader-specific key-value pairs
	// (file name, loader type, page count where known).
	Metadata map[string]any
}

// Chunk is the atomic retrieval unit: a bounded-length text span
// cut from one source document.
type Chunk struct {
	// ID is derived from the document and position so that rebuilding
	// the same corpus replaces chunks instead of duplicating them.
	ID string

	// DocumentID links to the source Document.
	DocumentID string

	// DocumentPath is the source file path, kept for display.
	DocumentPath string

	// Content is the text span.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation used for similarity search.
	Embedding []float32

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]any
}

// ChunkID builds the canonical chunk identifier for a document position.
func ChunkID(documentID string, position int) string {
	return fmt.Sprintf("%s:%d", documentID, position)
}

// RetrievedChunk is a chunk returned by a similarity query. The chunk
// fields are promoted, so callers read result.Content directly.
type RetrievedChunk struct {
	// Chunk is the matched chunk, hydrated from the store.
	Chunk

	// Similarity is the cosine similarity to the query vector (0-1).
	Similarity float64
}
