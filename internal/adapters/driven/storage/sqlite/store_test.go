package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/screener/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testChunk(id, docID, path string, position int, embedding []float32) domain.Chunk {
	return domain.Chunk{
		ID:           id,
		DocumentID:   docID,
		DocumentPath: path,
		Content:      "content of " + id,
		Position:     position,
		Embedding:    embedding,
		Metadata:     map[string]any{"source": path},
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := newTestStore(t)
	assert.FileExists(t, store.Path())

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpsert_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chunks := []domain.Chunk{
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0}),
		testChunk("d1:1", "d1", "/resumes/a.pdf", 1, []float32{0, 1, 0}),
	}
	require.NoError(t, store.Upsert(ctx, chunks))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	hits, err := store.Search(ctx, []float32{1, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "d1:0", hits[0].Chunk.ID)
	assert.Equal(t, "content of d1:0", hits[0].Chunk.Content)
	assert.Equal(t, []float32{1, 0, 0}, hits[0].Chunk.Embedding)
	assert.Equal(t, "/resumes/a.pdf", hits[0].Chunk.Metadata["source"])
}

func TestUpsert_ReplacesByChunkID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0})
	require.NoError(t, store.Upsert(ctx, []domain.Chunk{first}))

	// Rebuilding the same corpus must replace, not append.
	updated := first
	updated.Content = "rewritten"
	updated.Embedding = []float32{0, 0, 1}
	require.NoError(t, store.Upsert(ctx, []domain.Chunk{updated}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	hits, err := store.Search(ctx, []float32{0, 0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "rewritten", hits[0].Chunk.Content)
}

func TestSearch_OrdersBySimilarity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []domain.Chunk{
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0}),
		testChunk("d1:1", "d1", "/resumes/a.pdf", 1, []float32{0.9, 0.1, 0}),
		testChunk("d2:0", "d2", "/resumes/b.pdf", 0, []float32{0, 1, 0}),
	}))

	hits, err := store.Search(ctx, []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "d1:0", hits[0].Chunk.ID)
	assert.Equal(t, "d1:1", hits[1].Chunk.ID)
	assert.Equal(t, "d2:0", hits[2].Chunk.ID)
	assert.Greater(t, hits[0].Similarity, hits[1].Similarity)
	assert.Greater(t, hits[1].Similarity, hits[2].Similarity)
}

func TestSearch_TieBreakIsStable(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Identical embeddings: similarity ties across documents.
	same := []float32{0.5, 0.5, 0}
	require.NoError(t, store.Upsert(ctx, []domain.Chunk{
		testChunk("d2:0", "d2", "/resumes/b.pdf", 0, same),
		testChunk("d1:1", "d1", "/resumes/a.pdf", 1, same),
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, same),
	}))

	for range 3 {
		hits, err := store.Search(ctx, []float32{1, 1, 0}, 3)
		require.NoError(t, err)
		require.Len(t, hits, 3)
		assert.Equal(t, "d1:0", hits[0].Chunk.ID)
		assert.Equal(t, "d1:1", hits[1].Chunk.ID)
		assert.Equal(t, "d2:0", hits[2].Chunk.ID)
	}
}

func TestSearch_LimitsToK(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []domain.Chunk{
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0}),
		testChunk("d1:1", "d1", "/resumes/a.pdf", 1, []float32{0, 1, 0}),
		testChunk("d1:2", "d1", "/resumes/a.pdf", 2, []float32{0, 0, 1}),
	}))

	hits, err := store.Search(ctx, []float32{1, 1, 1}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearch_InvalidK(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Search(context.Background(), []float32{1}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, []domain.Chunk{
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0}),
		testChunk("d2:0", "d2", "/resumes/b.pdf", 0, []float32{0, 1, 0}),
	}))

	require.NoError(t, store.DeleteDocument(ctx, "d1"))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, []domain.Chunk{
		testChunk("d1:0", "d1", "/resumes/a.pdf", 0, []float32{1, 0, 0}),
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}
