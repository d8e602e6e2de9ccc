package cli

import (
	"bytes"
	"testing"
)

// setupTestServices swaps all pipeline services for mocks and returns a
// cleanup that restores them.
func setupTestServices(rater *mockRater, retriever *mockRetriever, indexer *mockIndexer) func() {
	oldIndexer := indexService
	oldRetriever := retrievalService
	oldRater := ratingService
	indexService = indexer
	retrievalService = retriever
	ratingService = rater
	return func() {
		indexService = oldIndexer
		retrievalService = oldRetriever
		ratingService = oldRater
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
