// Package loaders provides file-type specific resume loaders and the
// extension registry used to select one.
//
// Each loader handles one document format (PDF, DOCX) and produces a
// domain.Document with the extracted text. Files whose extension has no
// registered loader are skipped by the indexing pipeline.
package loaders

import (
	"path/filepath"
	"strings"

	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/loaders/docx"
	"github.com/hireloop/screener/internal/loaders/pdf"
)

// Registry maps lowercased file extensions to loaders.
type Registry struct {
	byExt map[string]driven.Loader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]driven.Loader)}
}

// Defaults returns a registry with the built-in PDF and DOCX loaders.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(pdf.New())
	r.Register(docx.New())
	return r
}

// Register adds a loader for each of its declared extensions.
// Later registrations win on extension collision.
func (r *Registry) Register(l driven.Loader) {
	for _, ext := range l.Extensions() {
		r.byExt[strings.ToLower(ext)] = l
	}
}

// ForPath returns the loader for the path's extension, or false when the
// file type is unsupported.
func (r *Registry) ForPath(path string) (driven.Loader, bool) {
	l, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return l, ok
}

// Extensions returns the registered extensions, for log messages.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}
