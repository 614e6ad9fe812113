package match

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/scoring"
)

// UseCase: подбор кандидатов под вакансию и пометки HR.
type UseCase interface {
	// Run scores every ready candidate of the job and returns only the matches
	// written by this run, best first.
	Run(ctx context.Context, ownerID, jobID uuid.UUID) ([]Match, error)
	List(ctx context.Context, ownerID, jobID uuid.UUID) ([]Match, error)
	SetShortlisted(ctx context.Context, ownerID, matchID uuid.UUID, shortlisted bool) (Match, error)
	SetNotes(ctx context.Context, ownerID, matchID uuid.UUID, notes string) (Match, error)
}

type service struct {
	repo       Repository
	jobs       job.Repository
	candidates candidate.Repository
	weights    scoring.Weights
	log        *zap.Logger
}

func NewService(repo Repository, jobs job.Repository, candidates candidate.Repository, weights scoring.Weights, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:       repo,
		jobs:       jobs,
		candidates: candidates,
		weights:    weights,
		log:        log,
	}
}

func (s *service) Run(ctx context.Context, ownerID, jobID uuid.UUID) ([]Match, error) {
	j, err := s.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}
	ready, err := s.candidates.ListReadyByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(ready))
	for _, c := range ready {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := ScoreCandidate(j, c, s.weights)
		m, err := s.repo.Upsert(ctx, res)
		if err != nil {
			s.log.Warn("match upsert failed",
				zap.String("job_id", jobID.String()),
				zap.String("candidate_id", c.ID.String()),
				zap.Error(err))
			continue
		}
		m.Candidate = summarize(c)
		matches = append(matches, m)
	}
	SortByScore(matches)

	s.log.Info("matching complete",
		zap.String("job_id", jobID.String()),
		zap.Int("ready", len(ready)),
		zap.Int("matched", len(matches)))
	return matches, nil
}

func (s *service) List(ctx context.Context, ownerID, jobID uuid.UUID) ([]Match, error) {
	if _, err := s.jobs.GetForOwner(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	return s.repo.ListByJob(ctx, jobID)
}

func (s *service) SetShortlisted(ctx context.Context, ownerID, matchID uuid.UUID, shortlisted bool) (Match, error) {
	if err := s.authorize(ctx, ownerID, matchID); err != nil {
		return Match{}, err
	}
	return s.repo.SetShortlisted(ctx, matchID, shortlisted)
}

func (s *service) SetNotes(ctx context.Context, ownerID, matchID uuid.UUID, notes string) (Match, error) {
	if err := s.authorize(ctx, ownerID, matchID); err != nil {
		return Match{}, err
	}
	return s.repo.SetNotes(ctx, matchID, notes)
}

// authorize: матч доступен только владельцу его вакансии.
func (s *service) authorize(ctx context.Context, ownerID, matchID uuid.UUID) error {
	m, err := s.repo.Get(ctx, matchID)
	if err != nil {
		return err
	}
	if _, err := s.jobs.GetForOwner(ctx, ownerID, m.JobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// SortByScore orders matches by FinalScore descending, keeping the input order on ties.
func SortByScore(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].FinalScore > ms[j].FinalScore })
}

func summarize(c candidate.Candidate) *CandidateSummary {
	return &CandidateSummary{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Status:          string(c.Status),
		YearsExperience: c.YearsExperience,
	}
}
