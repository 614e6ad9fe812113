package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/pkg/job"
)

type JobRepository struct {
	s *Store
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.jobs[j.ID] = cloneJob(j)
	return nil
}

func (r *JobRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (job.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	j, ok := r.s.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return job.Job{}, job.ErrNotFound
	}
	return cloneJob(j), nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []job.Job{}
	for _, j := range r.s.jobs {
		if j.OwnerID == ownerID {
			out = append(out, cloneJob(j))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return page(out, limit, offset), nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.jobs[j.ID]
	if !ok || cur.OwnerID != j.OwnerID {
		return job.ErrNotFound
	}
	j.CreatedAt = cur.CreatedAt
	r.s.jobs[j.ID] = cloneJob(j)
	return nil
}

func (r *JobRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return job.ErrNotFound
	}
	delete(r.s.jobs, id)
	for cid, c := range r.s.candidates {
		if c.JobID == id {
			delete(r.s.candidates, cid)
		}
	}
	for mid, m := range r.s.matches {
		if m.JobID == id {
			delete(r.s.matches, mid)
			delete(r.s.pairs, pairKey{m.JobID, m.CandidateID})
		}
	}
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
