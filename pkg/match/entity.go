package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Evidence: фрагмент резюме, подтверждающий навык.
type Evidence struct {
	Skill   string `json:"skill"`
	Snippet string `json:"snippet"`
}

// CandidateSummary is the candidate data shown next to a match.
type CandidateSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	YearsExperience float64   `json:"yearsExperience"`
}

// Match: оценка пары (вакансия, кандидат) и пометки HR.
// Shortlisted и Notes меняет только пользователь, повторный подбор их не трогает.
type Match struct {
	ID               uuid.UUID         `json:"id"`
	JobID            uuid.UUID         `json:"jobId"`
	CandidateID      uuid.UUID         `json:"candidateId"`
	SemanticScore    float64           `json:"semanticScore"`
	SkillScore       float64           `json:"skillScore"`
	ExperienceScore  float64           `json:"experienceScore"`
	FinalScore       float64           `json:"finalScore"`
	MatchedSkills    []string          `json:"matchedSkills"`
	MissingSkills    []string          `json:"missingSkills"`
	EvidenceSnippets []Evidence        `json:"evidenceSnippets"`
	Shortlisted      bool              `json:"shortlisted"`
	Notes            string            `json:"notes"`
	Candidate        *CandidateSummary `json:"candidate,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Result is the scoring-owned part of a Match: what an upsert may write.
type Result struct {
	JobID            uuid.UUID
	CandidateID      uuid.UUID
	SemanticScore    float64
	SkillScore       float64
	ExperienceScore  float64
	FinalScore       float64
	MatchedSkills    []string
	MissingSkills    []string
	EvidenceSnippets []Evidence
}

var ErrNotFound = errors.New("match not found")

// Repository: порт хранения матчей. Пара (JobID, CandidateID) уникальна.
type Repository interface {
	// Upsert вставляет или обновляет только поля оценки; shortlisted и notes сохраняются.
	Upsert(ctx context.Context, r Result) (Match, error)
	Get(ctx context.Context, id uuid.UUID) (Match, error)
	// ListByJob: по убыванию finalScore, с данными кандидата.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Match, error)
	SetShortlisted(ctx context.Context, id uuid.UUID, shortlisted bool) (Match, error)
	SetNotes(ctx context.Context, id uuid.UUID, notes string) (Match, error)
}
