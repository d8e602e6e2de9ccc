package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/screener/internal/core/domain"
)

func seedIndex(t *testing.T, index *mockIndex, chunks ...domain.Chunk) {
	t.Helper()
	require.NoError(t, index.Upsert(context.Background(), chunks))
}

func TestRetrievalService_Retrieve(t *testing.T) {
	index := newMockIndex()
	seedIndex(t, index,
		domain.Chunk{ID: "a:0", DocumentID: "a", DocumentPath: "a.pdf", Content: "golang expert", Position: 0, Embedding: []float32{1, 0, 0, 0}},
		domain.Chunk{ID: "a:1", DocumentID: "a", DocumentPath: "a.pdf", Content: "python novice", Position: 1, Embedding: []float32{0, 1, 0, 0}},
		domain.Chunk{ID: "b:0", DocumentID: "b", DocumentPath: "b.pdf", Content: "java veteran", Position: 0, Embedding: []float32{0, 0, 1, 0}},
	)

	embedder := &mockEmbedder{vectors: map[string][]float32{
		"golang": {1, 0.1, 0, 0},
	}}
	svc := NewRetrievalService(embedder, index)

	chunks, err := svc.Retrieve(context.Background(), "golang", 2)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, "golang expert", chunks[0].Content)
	assert.GreaterOrEqual(t, chunks[0].Similarity, chunks[1].Similarity)
}

func TestRetrievalService_Retrieve_Deterministic(t *testing.T) {
	index := newMockIndex()
	seedIndex(t, index,
		domain.Chunk{ID: "a:0", DocumentID: "a", DocumentPath: "a.pdf", Content: "first", Position: 0, Embedding: []float32{1, 2, 3, 4}},
		domain.Chunk{ID: "b:0", DocumentID: "b", DocumentPath: "b.pdf", Content: "second", Position: 0, Embedding: []float32{4, 3, 2, 1}},
		domain.Chunk{ID: "c:0", DocumentID: "c", DocumentPath: "c.pdf", Content: "third", Position: 0, Embedding: []float32{1, 1, 1, 1}},
	)

	svc := NewRetrievalService(&mockEmbedder{}, index)

	first, err := svc.Retrieve(context.Background(), "same query", 3)
	require.NoError(t, err)

	second, err := svc.Retrieve(context.Background(), "same query", 3)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Similarity, second[i].Similarity)
	}
}

func TestRetrievalService_Retrieve_EmptyQuery(t *testing.T) {
	svc := NewRetrievalService(&mockEmbedder{}, newMockIndex())

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := svc.Retrieve(context.Background(), query, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "query %q", query)
	}
}

func TestRetrievalService_Retrieve_DefaultK(t *testing.T) {
	index := newMockIndex()
	chunks := make([]domain.Chunk, 8)
	for i := range chunks {
		chunks[i] = domain.Chunk{
			ID:           domain.ChunkID("doc", i),
			DocumentID:   "doc",
			DocumentPath: "doc.pdf",
			Content:      "chunk",
			Position:     i,
			Embedding:    []float32{float32(i + 1), 1, 1, 1},
		}
	}
	seedIndex(t, index, chunks...)

	svc := NewRetrievalService(&mockEmbedder{}, index)

	results, err := svc.Retrieve(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopK)
}

func TestRetrievalService_Retrieve_EmbedderFailure(t *testing.T) {
	svc := NewRetrievalService(&mockEmbedder{embedErr: errors.New("timeout")}, newMockIndex())

	_, err := svc.Retrieve(context.Background(), "query", 5)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestRetrievalService_Retrieve_EmptyIndex(t *testing.T) {
	svc := NewRetrievalService(&mockEmbedder{}, newMockIndex())

	results, err := svc.Retrieve(context.Background(), "query", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestContextText(t *testing.T) {
	chunks := []domain.RetrievedChunk{
		{Chunk: domain.Chunk{Content: "first chunk"}},
		{Chunk: domain.Chunk{Content: "second chunk"}},
	}
	assert.Equal(t, "first chunk\n\nsecond chunk", contextText(chunks))
	assert.Equal(t, "", contextText(nil))
}
