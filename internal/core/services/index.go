package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hireloop/screener/internal/chunker"
	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/core/ports/driving"
	"github.com/hireloop/screener/internal/loaders"
	"github.com/hireloop/screener/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.Indexer = (*IndexService)(nil)

// IndexService builds the persistent embedding index from a directory of
// resume files.
type IndexService struct {
	registry *loaders.Registry
	splitter *chunker.Splitter
	embedder driven.EmbeddingService
	index    driven.ChunkIndex
}

// NewIndexService creates a new index service.
func NewIndexService(
	registry *loaders.Registry,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	index driven.ChunkIndex,
) *IndexService {
	return &IndexService{
		registry: registry,
		splitter: splitter,
		embedder: embedder,
		index:    index,
	}
}

// Build loads every supported file in dir, chunks and embeds the
// extracted text, and stores the chunks in the index.
//
// Unsupported file types and per-file load failures are skipped with a
// log line rather than aborting the build. A directory that yields no
// documents at all is an error.
func (s *IndexService) Build(ctx context.Context, dir string) (*driving.IndexReport, error) {
	logger.Section("Index Build")
	logger.Info("Resume directory: %s", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resume directory: %w", err)
	}

	// Deterministic processing order regardless of filesystem.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	report := &driving.IndexReport{}
	var documents []*domain.Document

	for _, name := range names {
		path := filepath.Join(dir, name)

		loader, ok := s.registry.ForPath(path)
		if !ok {
			logger.Warn("Unsupported file type skipped: %s", name)
			report.DocumentsSkipped++
			continue
		}

		doc, err := loader.Load(ctx, path)
		if err != nil {
			logger.Warn("Error loading file %s: %v", name, err)
			report.DocumentsSkipped++
			continue
		}

		logger.Debug("Loaded %s (%d bytes of text)", name, len(doc.Content))
		documents = append(documents, doc)
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("directory %s: %w", dir, domain.ErrNoDocumentsFound)
	}
	report.DocumentsLoaded = len(documents)
	logger.Info("Loaded %d documents (%d skipped)", report.DocumentsLoaded, report.DocumentsSkipped)

	for _, doc := range documents {
		indexed, err := s.indexDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		report.ChunksIndexed += indexed
	}

	logger.Info("Indexed %d chunks", report.ChunksIndexed)
	return report, nil
}

// indexDocument chunks, embeds and stores a single document. Prior
// chunks for the same document are removed first so a shrunken document
// leaves no stale entries behind.
func (s *IndexService) indexDocument(ctx context.Context, doc *domain.Document) (int, error) {
	chunks := s.splitter.Split(*doc)
	if len(chunks) == 0 {
		logger.Debug("No text to index in %s", doc.Path)
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed %s: %w: %v", doc.Path, domain.ErrExternalService, err)
	}
	if len(embeddings) != len(chunks) {
		return 0, fmt.Errorf("embed %s: got %d embeddings for %d chunks: %w",
			doc.Path, len(embeddings), len(chunks), domain.ErrExternalService)
	}
	for i := range chunks {
		chunks[i].Embedding = embeddings[i]
	}

	if err := s.index.DeleteDocument(ctx, doc.ID); err != nil {
		return 0, fmt.Errorf("clear prior chunks for %s: %w", doc.Path, err)
	}
	if err := s.index.Upsert(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store chunks for %s: %w", doc.Path, err)
	}

	logger.Debug("Indexed %d chunks from %s", len(chunks), doc.Path)
	return len(chunks), nil
}
