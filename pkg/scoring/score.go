package scoring

import (
	"errors"
	"strings"
)

// Default weights for the final score.
const (
	DefaultSemanticWeight   = 0.6
	DefaultSkillWeight      = 0.3
	DefaultExperienceWeight = 0.1

	// yearsForFullExperience: стаж, при котором experienceScore достигает 1.
	yearsForFullExperience = 10.0
)

// Weights: политика весов итоговой оценки.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
}

func DefaultWeights() Weights {
	return Weights{
		Semantic:   DefaultSemanticWeight,
		Skill:      DefaultSkillWeight,
		Experience: DefaultExperienceWeight,
	}
}

// Validate rejects negative weights and an all-zero policy.
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Skill < 0 || w.Experience < 0 {
		return errors.New("scoring weights must not be negative")
	}
	if w.Semantic+w.Skill+w.Experience == 0 {
		return errors.New("scoring weights must not all be zero")
	}
	return nil
}

// Final combines sub-scores. The result is not clamped: a negative semantic
// similarity pulls the final score below zero.
func (w Weights) Final(semantic, skill, experience float64) float64 {
	return w.Semantic*semantic + w.Skill*skill + w.Experience*experience
}

// SkillMatch checks every required skill for case-insensitive containment in the resume text.
// Score is matched/len(required), 0 when nothing is required. Order of required is preserved.
func SkillMatch(required []string, resumeText string) (matched, missing []string, score float64) {
	matched = []string{}
	missing = []string{}
	if len(required) == 0 {
		return matched, missing, 0
	}
	txt := strings.ToLower(resumeText)
	for _, s := range required {
		if strings.Contains(txt, strings.ToLower(s)) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing, float64(len(matched)) / float64(len(required))
}

// ExperienceScore = min(years/10, 1) for positive years, otherwise 0.
func ExperienceScore(years float64) float64 {
	if years <= 0 {
		return 0
	}
	return min(years/yearsForFullExperience, 1)
}
