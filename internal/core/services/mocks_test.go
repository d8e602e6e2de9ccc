package services

import (
	"context"
	"math"
	"os"
	"sort"

	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedder implements driven.EmbeddingService with deterministic
// vectors derived from the text, optionally overridden per input.
type mockEmbedder struct {
	vectors  map[string][]float32
	embedErr error
	calls    []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.calls = append(m.calls, text)
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return deriveVector(text), nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *mockEmbedder) ModelName() string { return "mock-embedder" }

// deriveVector maps text to a stable 4-dimensional vector.
func deriveVector(text string) []float32 {
	v := make([]float32, 4)
	for i, r := range text {
		v[i%4] += float32(r % 31)
	}
	return v
}

// mockLLM implements driven.LLMService with a scripted response.
type mockLLM struct {
	response    string
	generateErr error
	prompts     []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	m.prompts = append(m.prompts, prompt)
	return m.response, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockIndex implements driven.ChunkIndex in memory with the same
// ordering contract as the persistent store.
type mockIndex struct {
	chunks    map[string]domain.Chunk
	upsertErr error
	searchErr error
}

func newMockIndex() *mockIndex {
	return &mockIndex{chunks: make(map[string]domain.Chunk)}
}

func (m *mockIndex) Upsert(_ context.Context, chunks []domain.Chunk) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, chunk := range chunks {
		m.chunks[chunk.ID] = chunk
	}
	return nil
}

func (m *mockIndex) Search(_ context.Context, query []float32, k int) ([]domain.RetrievedChunk, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	results := make([]domain.RetrievedChunk, 0, len(m.chunks))
	for _, chunk := range m.chunks {
		results = append(results, domain.RetrievedChunk{
			Chunk:      chunk,
			Similarity: cosine(query, chunk.Embedding),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		if results[i].DocumentPath != results[j].DocumentPath {
			return results[i].DocumentPath < results[j].DocumentPath
		}
		return results[i].Position < results[j].Position
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (m *mockIndex) Count(_ context.Context) (int, error) {
	return len(m.chunks), nil
}

func (m *mockIndex) DeleteDocument(_ context.Context, documentID string) error {
	for id, chunk := range m.chunks {
		if chunk.DocumentID == documentID {
			delete(m.chunks, id)
		}
	}
	return nil
}

func (m *mockIndex) Close() error { return nil }

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// textLoader is a test loader for plain .txt files.
type textLoader struct {
	loadErr error
}

func (l *textLoader) Extensions() []string { return []string{".txt"} }

func (l *textLoader) Load(_ context.Context, path string) (*domain.Document, error) {
	if l.loadErr != nil {
		return nil, l.loadErr
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &domain.Document{
		ID:      path,
		Path:    path,
		Content: string(content),
	}, nil
}

// capturingRetriever records queries and returns scripted chunks.
type capturingRetriever struct {
	chunks      []domain.RetrievedChunk
	retrieveErr error
	queries     []string
	ks          []int
}

func (r *capturingRetriever) Retrieve(_ context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	if r.retrieveErr != nil {
		return nil, r.retrieveErr
	}
	r.queries = append(r.queries, query)
	r.ks = append(r.ks, k)
	return r.chunks, nil
}
