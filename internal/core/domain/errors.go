package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoDocumentsFound indicates the input directory yielded no loadable
	// resumes. Fatal: an empty corpus cannot be indexed.
	ErrNoDocumentsFound = errors.New("no documents found")

	// ErrUnsupportedFileType indicates a file extension with no registered
	// loader. Informational; such files are skipped.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrIndexPersistence indicates the embedding index could not be
	// written or read. Fatal to pipeline construction.
	ErrIndexPersistence = errors.New("index persistence failed")

	// ErrRatingParse indicates the language model response did not match
	// the expected two-field structured shape. Surfaced, never defaulted.
	ErrRatingParse = errors.New("rating response parse failed")

	// ErrExternalService indicates the embedding or language-model backend
	// was unreachable or returned an error.
	ErrExternalService = errors.New("external service error")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
