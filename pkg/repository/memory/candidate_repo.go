package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/pkg/candidate"
)

type CandidateRepository struct {
	s *Store
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.candidates[c.ID] = cloneCandidate(c)
	return nil
}

func (r *CandidateRepository) Get(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.candidates[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return cloneCandidate(c), nil
}

func (r *CandidateRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]candidate.Candidate, error) {
	return r.list(func(c candidate.Candidate) bool { return c.JobID == jobID }), nil
}

func (r *CandidateRepository) ListReadyByJob(ctx context.Context, jobID uuid.UUID) ([]candidate.Candidate, error) {
	out := r.list(func(c candidate.Candidate) bool {
		return c.JobID == jobID && c.Status == candidate.StatusReady
	})
	slices.Reverse(out)
	return out, nil
}

func (r *CandidateRepository) ListStale(ctx context.Context, before time.Time, limit int) ([]candidate.Candidate, error) {
	out := r.list(func(c candidate.Candidate) bool {
		return (c.Status == candidate.StatusUploaded || c.Status == candidate.StatusParsed) && c.UpdatedAt.Before(before)
	})
	slices.Reverse(out)
	return page(out, limit, 0), nil
}

func (r *CandidateRepository) SetParsed(ctx context.Context, id uuid.UUID, p candidate.Parsed) error {
	return r.update(id, func(c *candidate.Candidate) {
		c.ResumeText = p.Text
		c.ParsedSkills = slices.Clone(p.Skills)
		c.YearsExperience = p.YearsExperience
		c.Name = p.Name
		c.Email = p.Email
		c.Status = candidate.StatusParsed
		c.ErrorMessage = ""
	})
}

func (r *CandidateRepository) SetEmbedding(ctx context.Context, id uuid.UUID, vec []float32) error {
	return r.update(id, func(c *candidate.Candidate) {
		c.Embedding = slices.Clone(vec)
		c.Status = candidate.StatusReady
	})
}

func (r *CandidateRepository) SetError(ctx context.Context, id uuid.UUID, message string) error {
	return r.update(id, func(c *candidate.Candidate) {
		c.Status = candidate.StatusError
		c.ErrorMessage = message
	})
}

func (r *CandidateRepository) update(id uuid.UUID, fn func(c *candidate.Candidate)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.candidates[id]
	if !ok {
		return candidate.ErrNotFound
	}
	fn(&c)
	c.UpdatedAt = r.s.now()
	r.s.candidates[id] = c
	return nil
}

// list returns matching candidates newest first.
func (r *CandidateRepository) list(keep func(candidate.Candidate) bool) []candidate.Candidate {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []candidate.Candidate{}
	for _, c := range r.s.candidates {
		if keep(c) {
			out = append(out, cloneCandidate(c))
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID.String() < out[b].ID.String()
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}
