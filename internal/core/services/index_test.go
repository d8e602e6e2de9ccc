package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/screener/internal/chunker"
	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/loaders"
)

// newTestIndexService wires an IndexService over a temp-friendly loader
// registry, a small splitter and in-memory collaborators.
func newTestIndexService(t *testing.T, loadErr error) (*IndexService, *mockIndex) {
	t.Helper()

	registry := loaders.NewRegistry()
	registry.Register(&textLoader{loadErr: loadErr})

	index := newMockIndex()
	svc := NewIndexService(
		registry,
		chunker.New(chunker.WithChunkSize(50), chunker.WithOverlap(10)),
		&mockEmbedder{},
		index,
	)
	return svc, index
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestIndexService_Build(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alice.txt", "Ten years of Go and Python experience across two startups.")
	writeFile(t, dir, "bob.txt", "Junior developer, one internship.")
	writeFile(t, dir, "photo.jpg", "not a resume")

	svc, index := newTestIndexService(t, nil)

	report, err := svc.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, report.DocumentsLoaded)
	assert.Equal(t, 1, report.DocumentsSkipped)
	assert.Greater(t, report.ChunksIndexed, 0)

	count, err := index.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report.ChunksIndexed, count)

	// Every stored chunk carries an embedding.
	for _, chunk := range index.chunks {
		assert.NotEmpty(t, chunk.Embedding)
	}
}

func TestIndexService_Build_NoDocuments(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{name: "empty directory", files: nil},
		{name: "only unsupported types", files: map[string]string{
			"photo.jpg":  "binary",
			"notes.html": "<p>hi</p>",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			svc, _ := newTestIndexService(t, nil)
			_, err := svc.Build(context.Background(), dir)
			assert.ErrorIs(t, err, domain.ErrNoDocumentsFound)
		})
	}
}

func TestIndexService_Build_MissingDirectory(t *testing.T) {
	svc, _ := newTestIndexService(t, nil)
	_, err := svc.Build(context.Background(), "/nonexistent/resumes")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoDocumentsFound)
}

func TestIndexService_Build_LoadFailuresAreSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.txt", "never read")

	svc, _ := newTestIndexService(t, errors.New("corrupt file"))

	// Every load fails, so nothing can be indexed.
	_, err := svc.Build(context.Background(), dir)
	assert.ErrorIs(t, err, domain.ErrNoDocumentsFound)
}

func TestIndexService_Build_RebuildReplaces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alice.txt", "Ten years of Go and Python experience across two startups.")

	svc, index := newTestIndexService(t, nil)

	first, err := svc.Build(context.Background(), dir)
	require.NoError(t, err)

	second, err := svc.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, first.ChunksIndexed, second.ChunksIndexed)

	count, err := index.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ChunksIndexed, count, "rebuild must not duplicate chunks")
}

func TestIndexService_Build_EmbedderFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alice.txt", "Ten years of Go experience.")

	registry := loaders.NewRegistry()
	registry.Register(&textLoader{})

	svc := NewIndexService(
		registry,
		chunker.New(),
		&mockEmbedder{embedErr: errors.New("connection refused")},
		newMockIndex(),
	)

	_, err := svc.Build(context.Background(), dir)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestIndexService_Build_EmptyFileStillCounts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blank.txt", "")
	writeFile(t, dir, "alice.txt", "Go developer.")

	svc, _ := newTestIndexService(t, nil)

	report, err := svc.Build(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DocumentsLoaded)
	assert.Equal(t, 0, report.DocumentsSkipped)
}
