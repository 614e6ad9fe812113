package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/pkg/match"
)

type MatchRepository struct {
	s *Store
}

// Upsert mirrors INSERT ... ON CONFLICT (job_id, candidate_id) DO UPDATE of the scoring columns.
func (r *MatchRepository) Upsert(ctx context.Context, res match.Result) (match.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	key := pairKey{res.JobID, res.CandidateID}

	m := match.Match{ID: uuid.New(), JobID: res.JobID, CandidateID: res.CandidateID, CreatedAt: now}
	if id, ok := r.s.pairs[key]; ok {
		m = r.s.matches[id]
	}
	m.SemanticScore = res.SemanticScore
	m.SkillScore = res.SkillScore
	m.ExperienceScore = res.ExperienceScore
	m.FinalScore = res.FinalScore
	m.MatchedSkills = slices.Clone(res.MatchedSkills)
	m.MissingSkills = slices.Clone(res.MissingSkills)
	m.EvidenceSnippets = slices.Clone(res.EvidenceSnippets)
	m.UpdatedAt = now

	r.s.matches[m.ID] = m
	r.s.pairs[key] = m.ID
	return cloneMatch(m), nil
}

func (r *MatchRepository) Get(ctx context.Context, id uuid.UUID) (match.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return r.withCandidate(m), nil
}

func (r *MatchRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]match.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []match.Match{}
	for _, m := range r.s.matches {
		if m.JobID == jobID {
			out = append(out, r.withCandidate(m))
		}
	}
	slices.SortFunc(out, func(a, b match.Match) int { return a.CreatedAt.Compare(b.CreatedAt) })
	match.SortByScore(out)
	return out, nil
}

func (r *MatchRepository) SetShortlisted(ctx context.Context, id uuid.UUID, shortlisted bool) (match.Match, error) {
	return r.update(id, func(m *match.Match) { m.Shortlisted = shortlisted })
}

func (r *MatchRepository) SetNotes(ctx context.Context, id uuid.UUID, notes string) (match.Match, error) {
	return r.update(id, func(m *match.Match) { m.Notes = notes })
}

func (r *MatchRepository) update(id uuid.UUID, fn func(m *match.Match)) (match.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.matches[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	fn(&m)
	m.UpdatedAt = r.s.now()
	r.s.matches[id] = m
	return r.withCandidate(m), nil
}

// withCandidate expects the store lock to be held.
func (r *MatchRepository) withCandidate(m match.Match) match.Match {
	m = cloneMatch(m)
	if c, ok := r.s.candidates[m.CandidateID]; ok {
		m.Candidate = &match.CandidateSummary{
			ID:              c.ID,
			Name:            c.Name,
			Email:           c.Email,
			Status:          string(c.Status),
			YearsExperience: c.YearsExperience,
		}
	}
	return m
}
