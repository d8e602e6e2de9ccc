package domain

import (
	"fmt"
	"strings"
)

// RatingMin and RatingMax bound both rating fields.
const (
	RatingMin = 0
	RatingMax = 10
)

// Criteria describes the ideal candidate for a rating request.
// It is supplied per request and never persisted.
type Criteria struct {
	// RequiredExperienceYears is the minimum total work experience.
	RequiredExperienceYears int

	// RequiredSkills is the ordered list of required technologies.
	RequiredSkills []string
}

// Validate checks the criteria are usable for a rating request.
func (c Criteria) Validate() error {
	if c.RequiredExperienceYears < 0 {
		return fmt.Errorf("%w: required experience must be non-negative, got %d",
			ErrInvalidInput, c.RequiredExperienceYears)
	}
	if len(c.RequiredSkills) == 0 {
		return fmt.Errorf("%w: at least one required skill is needed", ErrInvalidInput)
	}
	for _, skill := range c.RequiredSkills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: required skills must not be blank", ErrInvalidInput)
		}
	}
	return nil
}

// SkillsList returns the skills joined for prompts and retrieval queries.
func (c Criteria) SkillsList() string {
	return strings.Join(c.RequiredSkills, ", ")
}

// Rating is the structured result of scoring one candidate corpus
// against a Criteria.
type Rating struct {
	// WorkExRating scores the candidate's total work experience, 0-10.
	WorkExRating float64 `json:"work_ex_rating"`

	// SkillsRating scores coverage of the required skills, 0-10.
	SkillsRating float64 `json:"skills_rating"`
}

// Validate checks both scores are within the inclusive [0, 10] range.
func (r Rating) Validate() error {
	if r.WorkExRating < RatingMin || r.WorkExRating > RatingMax {
		return fmt.Errorf("%w: work_ex_rating %v outside [%d, %d]",
			ErrRatingParse, r.WorkExRating, RatingMin, RatingMax)
	}
	if r.SkillsRating < RatingMin || r.SkillsRating > RatingMax {
		return fmt.Errorf("%w: skills_rating %v outside [%d, %d]",
			ErrRatingParse, r.SkillsRating, RatingMin, RatingMax)
	}
	return nil
}
