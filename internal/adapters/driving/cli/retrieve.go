package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/core/domain"
)

var (
	retrieveTopK int
	retrieveJSON bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Retrieve resume chunks similar to a query",
	Long: `Embeds the query and returns the most similar indexed chunks,
ordered by decreasing cosine similarity. Useful for inspecting what
context the rater would see.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().IntVarP(&retrieveTopK, "top-k", "k", 0, "number of chunks to retrieve (default from config)")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	k := retrieveTopK
	if k <= 0 {
		k = cfg.Index.TopK
	}

	chunks, err := retrievalService.Retrieve(cmd.Context(), args[0], k)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if retrieveJSON {
		return outputRetrieveJSON(cmd, chunks)
	}
	return outputRetrieveText(cmd, chunks)
}

func outputRetrieveJSON(cmd *cobra.Command, chunks []domain.RetrievedChunk) error {
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRetrieveText(cmd *cobra.Command, chunks []domain.RetrievedChunk) error {
	if len(chunks) == 0 {
		cmd.Println("No chunks found.")
		return nil
	}

	cmd.Println("Chunks:")
	cmd.Println()
	for i, chunk := range chunks {
		cmd.Printf("  [%d] %s #%d (%.4f)\n", i+1, chunk.DocumentPath, chunk.Position, chunk.Similarity)
		cmd.Printf("      %s\n", snippet(chunk.Content, 160))
		cmd.Println()
	}
	return nil
}

// snippet truncates content to at most n runes for display.
func snippet(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "..."
}
