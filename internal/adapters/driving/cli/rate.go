package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/core/domain"
)

var (
	rateExperience int
	rateSkills     []string
	rateJSON       bool
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate the indexed candidate against screening criteria",
	Long: `Retrieves resume context relevant to the required experience and
skills, asks the configured language model for a structured rating, and
prints the two scores: work experience and skills, each 0 to 10.`,
	Args: cobra.NoArgs,
	RunE: runRate,
}

func init() {
	rateCmd.Flags().IntVarP(&rateExperience, "experience", "e", 0, "required years of work experience")
	rateCmd.Flags().StringSliceVarP(&rateSkills, "skills", "s", nil, "required skills (comma separated or repeated)")
	rateCmd.Flags().BoolVar(&rateJSON, "json", false, "output the rating as JSON")
	_ = rateCmd.MarkFlagRequired("skills")
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, _ []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	criteria := domain.Criteria{
		RequiredExperienceYears: rateExperience,
		RequiredSkills:          rateSkills,
	}

	rating, err := ratingService.Rate(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("rating failed: %w", err)
	}

	if rateJSON {
		data, err := json.MarshalIndent(rating, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rating: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Work experience: %.1f / 10\n", rating.WorkExRating)
	cmd.Printf("Skills:          %.1f / 10\n", rating.SkillsRating)
	return nil
}
