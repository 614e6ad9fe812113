package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/pkg/dashboard"
)

type DashboardRepository struct {
	s *Store
}

func (r *DashboardRepository) Totals(ctx context.Context, ownerID uuid.UUID) (dashboard.Totals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var t dashboard.Totals
	owned := r.ownedJobs(ownerID)
	t.Jobs = len(owned)
	for _, c := range r.s.candidates {
		if _, ok := owned[c.JobID]; ok && c.OwnerID == ownerID {
			t.Candidates++
		}
	}
	var sum float64
	for _, m := range r.s.matches {
		if _, ok := owned[m.JobID]; !ok {
			continue
		}
		t.Matches++
		sum += m.FinalScore
		if m.Shortlisted {
			t.Shortlisted++
		}
	}
	if t.Matches > 0 {
		t.AvgFinalScore = sum / float64(t.Matches)
	}
	return t, nil
}

func (r *DashboardRepository) DailyUploads(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	owned := r.ownedJobs(ownerID)
	out := make(map[string]int)
	for _, c := range r.s.candidates {
		if _, ok := owned[c.JobID]; ok && c.OwnerID == ownerID && !c.CreatedAt.Before(since) {
			out[dashboard.DayKey(c.CreatedAt)]++
		}
	}
	return out, nil
}

func (r *DashboardRepository) DailyMatches(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	owned := r.ownedJobs(ownerID)
	out := make(map[string]int)
	for _, m := range r.s.matches {
		if _, ok := owned[m.JobID]; ok && !m.CreatedAt.Before(since) {
			out[dashboard.DayKey(m.CreatedAt)]++
		}
	}
	return out, nil
}

func (r *DashboardRepository) ScoreHistogram(ctx context.Context, ownerID uuid.UUID) (map[int]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	owned := r.ownedJobs(ownerID)
	out := make(map[int]int)
	for _, m := range r.s.matches {
		if _, ok := owned[m.JobID]; ok {
			out[dashboard.BucketIndex(m.FinalScore)]++
		}
	}
	return out, nil
}

func (r *DashboardRepository) ownedJobs(ownerID uuid.UUID) map[uuid.UUID]struct{} {
	owned := make(map[uuid.UUID]struct{})
	for id, j := range r.s.jobs {
		if j.OwnerID == ownerID {
			owned[id] = struct{}{}
		}
	}
	return owned
}

var _ dashboard.Repository = (*DashboardRepository)(nil)
