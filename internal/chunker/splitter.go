// Package chunker splits extracted resume text into overlapping
// bounded-length chunks for embedding and retrieval.
package chunker

import (
	"strings"

	"github.com/hireloop/screener/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// defaultSeparators is the split priority: paragraph breaks first, then
// line breaks, then word breaks, then single characters as a last resort.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter cuts document content into chunks along natural text
// boundaries where possible, while bounding the maximum chunk size.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the maximum chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between adjacent chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithSeparators overrides the separator priority list. The final
// separator should be the empty string so oversized runs can always be
// broken at the character level.
func WithSeparators(separators []string) Option {
	return func(s *Splitter) {
		if len(separators) > 0 {
			s.separators = separators
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		separators: defaultSeparators,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave room for the chunk to advance
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured maximum chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured chunk overlap.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split cuts one document into ordered chunks. Chunks never cross a
// document boundary; the chunk ID is derived from the document ID and
// position so rebuilds upsert instead of duplicating.
func (s *Splitter) Split(doc domain.Document) []domain.Chunk {
	pieces := s.splitText(doc.Content, s.separators)

	chunks := make([]domain.Chunk, 0, len(pieces))
	for _, piece := range pieces {
		position := len(chunks)
		chunks = append(chunks, domain.Chunk{
			ID:           domain.ChunkID(doc.ID, position),
			DocumentID:   doc.ID,
			DocumentPath: doc.Path,
			Content:      piece,
			Position:     position,
			Metadata: map[string]any{
				"source": doc.Path,
			},
		})
	}
	return chunks
}

// splitText recursively splits text with the highest-priority separator
// present, then merges the pieces back into chunks of at most chunkSize
// characters with the configured overlap.
func (s *Splitter) splitText(text string, separators []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	separator := ""
	var remaining []string
	for i, sep := range separators {
		if sep == "" {
			separator = ""
			remaining = nil
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	var splits []string
	if separator == "" {
		splits = splitCharacters(text)
	} else {
		for _, part := range strings.Split(text, separator) {
			if part != "" {
				splits = append(splits, part)
			}
		}
	}

	var result []string
	var fitting []string
	for _, split := range splits {
		if len(split) < s.chunkSize {
			fitting = append(fitting, split)
			continue
		}
		// Oversized split: flush what fits, then recurse with the
		// lower-priority separators.
		if len(fitting) > 0 {
			result = append(result, s.merge(fitting, separator)...)
			fitting = nil
		}
		if len(remaining) == 0 {
			result = append(result, split)
		} else {
			result = append(result, s.splitText(split, remaining)...)
		}
	}
	if len(fitting) > 0 {
		result = append(result, s.merge(fitting, separator)...)
	}

	return result
}

// merge greedily joins splits into chunks bounded by chunkSize, carrying
// the trailing overlap characters into the next chunk.
func (s *Splitter) merge(splits []string, separator string) []string {
	sepLen := len(separator)

	var chunks []string
	var current []string
	total := 0

	appendChunk := func() {
		joined := strings.TrimSpace(strings.Join(current, separator))
		if joined != "" {
			chunks = append(chunks, joined)
		}
	}

	for _, split := range splits {
		extra := len(split)
		if len(current) > 0 {
			extra += sepLen
		}
		if total+extra > s.chunkSize && len(current) > 0 {
			appendChunk()
			// Drop leading splits until the carried tail fits both the
			// overlap budget and the incoming split.
			for total > s.overlap || (total+extra > s.chunkSize && total > 0) {
				total -= len(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
				extra = len(split)
				if len(current) > 0 {
					extra += sepLen
				}
			}
		}
		current = append(current, split)
		total += extra
	}
	appendChunk()

	return chunks
}

// splitCharacters breaks text into single characters, respecting UTF-8
// boundaries.
func splitCharacters(text string) []string {
	runes := []rune(text)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
