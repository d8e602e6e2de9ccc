package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [resume-dir]",
	Short: "Build the resume index",
	Long: `Loads every supported resume (PDF, DOCX) in the directory, splits the
extracted text into overlapping chunks, embeds each chunk and stores the
result in the local index. Re-indexing a directory replaces the prior
entries for its files.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	report, err := indexService.Build(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	cmd.Printf("Indexed %d chunks from %d documents (%d files skipped)\n",
		report.ChunksIndexed, report.DocumentsLoaded, report.DocumentsSkipped)
	return nil
}
