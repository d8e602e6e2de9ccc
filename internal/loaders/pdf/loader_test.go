package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error
}

func (m *mockRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return m.output, m.err
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0600))
	return path
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".pdf"}, New().Extensions())
}

func TestLoad(t *testing.T) {
	path := writeTempPDF(t)
	loader := New(WithRunner(&mockRunner{output: []byte("5 years as a Backend Engineer\n")}))

	doc, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "5 years as a Backend Engineer", doc.Content)
	assert.Equal(t, path, doc.Path)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "resume.pdf", doc.Metadata["file_name"])
	assert.Equal(t, "pdf", doc.Metadata["loader"])

	// Identity is stable per path so re-indexing replaces.
	again, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again.ID)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := New(WithRunner(&mockRunner{output: []byte("never reached")}))

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestText_ExtractionFailureIsAnError(t *testing.T) {
	path := writeTempPDF(t)
	loader := New(WithRunner(&mockRunner{err: errors.New("exit status 1")}))

	text, err := loader.Text(context.Background(), path)
	require.Error(t, err)
	assert.Empty(t, text)
}

func TestText_EmptyDocumentIsNotAnError(t *testing.T) {
	path := writeTempPDF(t)
	loader := New(WithRunner(&mockRunner{output: []byte("  \n")}))

	text, err := loader.Text(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, text)
}
