package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel: ожидаемый уровень кандидата.
type ExperienceLevel string

const (
	LevelFresher ExperienceLevel = "Fresher"
	LevelJunior  ExperienceLevel = "Junior"
	LevelMid     ExperienceLevel = "Mid"
	LevelSenior  ExperienceLevel = "Senior"
	LevelAny     ExperienceLevel = "Any"
)

// ParseExperienceLevel accepts the level names case-insensitively; empty means Any.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch normalizeLevel(s) {
	case "":
		return LevelAny, true
	case "fresher":
		return LevelFresher, true
	case "junior":
		return LevelJunior, true
	case "mid":
		return LevelMid, true
	case "senior":
		return LevelSenior, true
	case "any":
		return LevelAny, true
	}
	return "", false
}

// Job описывает вакансию, под которую подбираются кандидаты.
type Job struct {
	ID               uuid.UUID       `json:"id"`
	OwnerID          uuid.UUID       `json:"createdBy"`
	Title            string          `json:"jobTitle"`
	Description      string          `json:"jobDescription"`
	RequiredSkills   []string        `json:"requiredSkills"`
	NiceToHaveSkills []string        `json:"niceToHaveSkills"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	Embedding        []float32       `json:"-"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Input: данные для создания вакансии. Навыки приходят как произвольный JSON-массив.
type Input struct {
	Title            string
	Description      string
	RequiredSkills   []any
	NiceToHaveSkills []any
	ExperienceLevel  string
}

// Patch is a partial update; nil fields stay untouched.
type Patch struct {
	Title            *string
	Description      *string
	RequiredSkills   []any
	NiceToHaveSkills []any
	ExperienceLevel  *string
}

var ErrNotFound = errors.New("job not found")

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository: порт хранения вакансий. Все выборки ограничены владельцем.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Job, error)
	// Update перезаписывает изменяемые поля; ErrNotFound если вакансия не принадлежит владельцу.
	Update(ctx context.Context, j Job) error
	// DeleteForOwner удаляет вакансию вместе с кандидатами и матчами.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
