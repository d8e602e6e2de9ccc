// Package pdf provides a PDF resume loader backed by the poppler
// pdftotext utility.
package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// CommandRunner executes an external command and returns its stdout.
// It exists so tests can substitute pdftotext.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Loader extracts text from PDF files.
type Loader struct {
	runner CommandRunner
}

// Option configures the loader.
type Option func(*Loader)

// WithRunner overrides the command runner. Used by tests.
func WithRunner(r CommandRunner) Option {
	return func(l *Loader) {
		if r != nil {
			l.runner = r
		}
	}
}

// New creates a PDF loader.
func New(opts ...Option) *Loader {
	l := &Loader{runner: execRunner{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Extensions returns the file extensions this loader handles.
func (l *Loader) Extensions() []string {
	return []string{".pdf"}
}

// Load extracts layout-preserved text from the PDF at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, error) {
	content, err := l.Text(ctx, path)
	if err != nil {
		return nil, err
	}

	// Identity derives from the path so re-indexing the same file
	// replaces its chunks instead of appending new ones.
	return &domain.Document{
		ID:      uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)).String(),
		Path:    path,
		Content: content,
		Metadata: map[string]any{
			"file_name": filepath.Base(path),
			"loader":    "pdf",
		},
	}, nil
}

// Text extracts the PDF's text in page order. A read failure is an
// error, never an empty string, so callers can tell "no text" from
// "extraction failed".
func (l *Loader) Text(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("pdf: stat %s: %w", path, err)
	}

	// "-" writes extracted text to stdout; pages arrive in order.
	out, err := l.runner.Run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdf: extract %s (is poppler-utils installed?): %w", path, err)
	}

	return strings.TrimSpace(string(out)), nil
}
