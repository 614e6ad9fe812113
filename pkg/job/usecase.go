package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/embedding"
	"github.com/artem13815/talentmatch/pkg/nlp"
)

// UseCase: сценарии работы с вакансиями HR-пользователя.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in Input) (Job, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Job, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Job, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (Job, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo     Repository
	dict     *nlp.Dictionary
	embedder embedding.Embedder
	log      *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, dict *nlp.Dictionary, embedder embedding.Embedder, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:     repo,
		dict:     dict,
		embedder: embedder,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, in Input) (Job, error) {
	title := strings.TrimSpace(in.Title)
	desc := strings.TrimSpace(in.Description)
	if title == "" || desc == "" || len(in.RequiredSkills) == 0 {
		return Job{}, ErrValidation("jobTitle, jobDescription, and requiredSkills are required")
	}
	required := s.skills(in.RequiredSkills)
	if len(required) == 0 {
		return Job{}, ErrValidation("requiredSkills must be an array of strings")
	}
	level, ok := ParseExperienceLevel(in.ExperienceLevel)
	if !ok {
		return Job{}, ErrValidation("experienceLevel must be one of Fresher, Junior, Mid, Senior, Any")
	}

	vec, err := s.embedder.Embed(ctx, desc)
	if err != nil {
		return Job{}, fmt.Errorf("embed job description: %w", err)
	}

	now := s.now()
	j := Job{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            title,
		Description:      desc,
		RequiredSkills:   required,
		NiceToHaveSkills: s.skills(in.NiceToHaveSkills),
		ExperienceLevel:  level,
		Embedding:        vec,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	s.log.Info("job created",
		zap.String("job_id", j.ID.String()),
		zap.Strings("required_skills", j.RequiredSkills),
		zap.Int("embedding_dims", len(vec)))
	return j, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Job, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Job, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (Job, error) {
	j, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Job{}, err
	}
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return Job{}, ErrValidation("jobTitle must not be empty")
		}
		j.Title = t
	}
	if p.RequiredSkills != nil {
		required := s.skills(p.RequiredSkills)
		if len(required) == 0 {
			return Job{}, ErrValidation("requiredSkills must be a non-empty array of strings")
		}
		j.RequiredSkills = required
	}
	if p.NiceToHaveSkills != nil {
		j.NiceToHaveSkills = s.skills(p.NiceToHaveSkills)
	}
	if p.ExperienceLevel != nil {
		level, ok := ParseExperienceLevel(*p.ExperienceLevel)
		if !ok {
			return Job{}, ErrValidation("experienceLevel must be one of Fresher, Junior, Mid, Senior, Any")
		}
		j.ExperienceLevel = level
	}
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		if desc == "" {
			return Job{}, ErrValidation("jobDescription must not be empty")
		}
		if desc != j.Description {
			vec, err := s.embedder.Embed(ctx, desc)
			if err != nil {
				return Job{}, fmt.Errorf("embed job description: %w", err)
			}
			j.Embedding = vec
		}
		j.Description = desc
	}
	j.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.DeleteForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	s.log.Info("job deleted", zap.String("job_id", id.String()))
	return nil
}

// skills normalizes a raw skill array and drops names that are blank after
// normalization: an empty name is a substring of every resume.
func (s *service) skills(raw []any) []string {
	out := s.dict.NormalizeSkillsArray(raw)
	kept := out[:0]
	for _, name := range out {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return kept
}

func normalizeLevel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
