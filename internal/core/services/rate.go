package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/core/ports/driving"
	"github.com/hireloop/screener/internal/logger"
)

// Ensure RatingService implements the interface.
var _ driving.Rater = (*RatingService)(nil)

// ratingMaxTokens bounds the rating completion. The expected output is
// a two-key JSON object, so this is generous.
const ratingMaxTokens = 256

// ratingPromptTemplate is filled with the retrieved context and the
// screening criteria. The model is instructed to answer with nothing
// but a two-key JSON object.
const ratingPromptTemplate = `You are an expert HR screening assistant. Your task is to analyze the provided resume context and generate two numerical ratings based on specific criteria.

**Context from Resume:**
---
%[1]s
---

**Evaluation Criteria:**

1.  **Work Experience:** The ideal candidate has at least **%[2]d years** of total work experience.
2.  **Skills:** The ideal candidate has expertise in the following technologies: **%[3]s**.

**Instructions:**

1.  **For 'work_ex_rating':** Carefully review the context to determine the candidate's total work experience.
    - If the candidate has %[2]d or more years of experience, rate them between 8 and 10.
    - If they have less, provide a proportionally lower score.
    - If no work experience is mentioned, the score is 0.

2.  **For 'skills_rating':** Carefully review the context for mentions of the required skills (%[3]s).
    - The score should reflect how many of the required skills are present. A candidate with all skills should receive a high score (8-10).
    - If proficiency levels are mentioned (e.g., "expert," "advanced"), consider that in your rating.
    - If no relevant skills are mentioned, the score is 0.

**Output Format:**
Provide your response ONLY as a JSON object with two keys: "work_ex_rating" and "skills_rating".`

// RatingService rates the indexed candidate corpus against screening
// criteria using retrieved context and a language model.
type RatingService struct {
	retriever driving.Retriever
	llm       driven.LLMService
	topK      int
}

// NewRatingService creates a new rating service. topK controls how many
// chunks are retrieved as prompt context; zero means DefaultTopK.
func NewRatingService(retriever driving.Retriever, llm driven.LLMService, topK int) *RatingService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RatingService{
		retriever: retriever,
		llm:       llm,
		topK:      topK,
	}
}

// Rate retrieves context relevant to the criteria and asks the language
// model for a structured two-field rating.
func (s *RatingService) Rate(ctx context.Context, criteria domain.Criteria) (*domain.Rating, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	skills := criteria.SkillsList()
	query := fmt.Sprintf(
		"A candidate with at least %d years of work experience and expertise in %s.",
		criteria.RequiredExperienceYears, skills,
	)

	chunks, err := s.retriever.Retrieve(ctx, query, s.topK)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("index has no chunks to rate against: %w", domain.ErrNoDocumentsFound)
	}

	prompt := fmt.Sprintf(ratingPromptTemplate,
		contextText(chunks), criteria.RequiredExperienceYears, skills)

	logger.Section("Rating")
	logger.Info("Model: %s", s.llm.ModelName())
	logger.Debug("Prompt context: %d chunks", len(chunks))

	output, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: ratingMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate rating: %w: %v", domain.ErrExternalService, err)
	}

	rating, err := parseRating(output)
	if err != nil {
		return nil, err
	}

	logger.Info("work_ex_rating=%.1f skills_rating=%.1f", rating.WorkExRating, rating.SkillsRating)
	return rating, nil
}

// ratingPayload mirrors the required model output. Pointer fields
// distinguish "absent" from an explicit zero score.
type ratingPayload struct {
	WorkExRating *float64 `json:"work_ex_rating"`
	SkillsRating *float64 `json:"skills_rating"`
}

// parseRating extracts the JSON object from the model output and
// validates it strictly. Anything other than exactly the two required
// numeric keys in range is a parse failure.
func parseRating(output string) (*domain.Rating, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in model output: %w", domain.ErrRatingParse)
	}

	dec := json.NewDecoder(strings.NewReader(output[start : end+1]))
	dec.DisallowUnknownFields()

	var payload ratingPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode model output: %v: %w", err, domain.ErrRatingParse)
	}
	if payload.WorkExRating == nil {
		return nil, fmt.Errorf("model output missing work_ex_rating: %w", domain.ErrRatingParse)
	}
	if payload.SkillsRating == nil {
		return nil, fmt.Errorf("model output missing skills_rating: %w", domain.ErrRatingParse)
	}

	rating := &domain.Rating{
		WorkExRating: *payload.WorkExRating,
		SkillsRating: *payload.SkillsRating,
	}
	if err := rating.Validate(); err != nil {
		return nil, err
	}
	return rating, nil
}
