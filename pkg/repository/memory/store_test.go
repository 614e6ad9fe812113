package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/match"
)

func TestMatchUpsertPreservesUserFields(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Matches()
	jobID, candID := uuid.New(), uuid.New()

	first, err := repo.Upsert(ctx, match.Result{JobID: jobID, CandidateID: candID, FinalScore: 0.4})
	require.NoError(t, err)

	_, err = repo.SetShortlisted(ctx, first.ID, true)
	require.NoError(t, err)
	_, err = repo.SetNotes(ctx, first.ID, "call back")
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, match.Result{JobID: jobID, CandidateID: candID, FinalScore: 0.9, MatchedSkills: []string{"Go"}})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.Shortlisted)
	assert.Equal(t, "call back", second.Notes)
	assert.Equal(t, 0.9, second.FinalScore)
	assert.Equal(t, []string{"Go"}, second.MatchedSkills)

	all, err := repo.ListByJob(ctx, jobID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMatchNotFound(t *testing.T) {
	repo := NewStore().Matches()
	_, err := repo.SetNotes(context.Background(), uuid.New(), "x")
	assert.ErrorIs(t, err, match.ErrNotFound)
	_, err = repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestJobOwnershipAndCascade(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	owner, stranger := uuid.New(), uuid.New()
	j := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Go dev", RequiredSkills: []string{"Go"}}
	require.NoError(t, s.Jobs().Create(ctx, j))

	_, err := s.Jobs().GetForOwner(ctx, stranger, j.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)

	c := candidate.Candidate{ID: uuid.New(), OwnerID: owner, JobID: j.ID, Status: candidate.StatusReady}
	require.NoError(t, s.Candidates().Create(ctx, c))
	_, err = s.Matches().Upsert(ctx, match.Result{JobID: j.ID, CandidateID: c.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Jobs().DeleteForOwner(ctx, stranger, j.ID), job.ErrNotFound)
	require.NoError(t, s.Jobs().DeleteForOwner(ctx, owner, j.ID))

	_, err = s.Candidates().Get(ctx, c.ID)
	assert.ErrorIs(t, err, candidate.ErrNotFound)
	ms, err := s.Matches().ListByJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestJobListNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	owner := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		require.NoError(t, s.Jobs().Create(ctx, job.Job{
			ID: uuid.New(), OwnerID: owner, Title: string(rune('A' + i)), CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	all, err := s.Jobs().ListByOwner(ctx, owner, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Title)

	pg, err := s.Jobs().ListByOwner(ctx, owner, 1, 1)
	require.NoError(t, err)
	require.Len(t, pg, 1)
	assert.Equal(t, "B", pg[0].Title)

	empty, err := s.Jobs().ListByOwner(ctx, owner, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCandidateStale(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	old := time.Now().Add(-time.Hour)
	repo := s.Candidates()
	stuck := candidate.Candidate{ID: uuid.New(), Status: candidate.StatusUploaded, CreatedAt: old, UpdatedAt: old}
	fresh := candidate.Candidate{ID: uuid.New(), Status: candidate.StatusParsed, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	done := candidate.Candidate{ID: uuid.New(), Status: candidate.StatusReady, CreatedAt: old, UpdatedAt: old}
	for _, c := range []candidate.Candidate{stuck, fresh, done} {
		require.NoError(t, repo.Create(ctx, c))
	}
	got, err := repo.ListStale(ctx, time.Now().Add(-time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stuck.ID, got[0].ID)
}
