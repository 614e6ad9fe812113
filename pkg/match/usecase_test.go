package match_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/match"
	"github.com/artem13815/talentmatch/pkg/repository/memory"
	"github.com/artem13815/talentmatch/pkg/scoring"
)

type fixture struct {
	store *memory.Store
	uc    match.UseCase
	owner uuid.UUID
	job   job.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	owner := uuid.New()
	j := job.Job{
		ID:             uuid.New(),
		OwnerID:        owner,
		Title:          "Backend engineer",
		Description:    "Go services",
		RequiredSkills: []string{"Go", "Kafka"},
		Embedding:      []float32{1, 0},
		CreatedAt:      time.Now(),
	}
	require.NoError(t, s.Jobs().Create(context.Background(), j))
	uc := match.NewService(s.Matches(), s.Jobs(), s.Candidates(), scoring.DefaultWeights(), zap.NewNop())
	return &fixture{store: s, uc: uc, owner: owner, job: j}
}

func (f *fixture) addCandidate(t *testing.T, text string, vec []float32, years float64, status candidate.Status) candidate.Candidate {
	t.Helper()
	c := candidate.Candidate{
		ID:              uuid.New(),
		OwnerID:         f.owner,
		JobID:           f.job.ID,
		Name:            "candidate",
		ResumeText:      text,
		Embedding:       vec,
		YearsExperience: years,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, f.store.Candidates().Create(context.Background(), c))
	return c
}

func TestRunScoresReadyCandidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	strong := f.addCandidate(t, "Five years of Go and gRPC in production.", []float32{0.8, 0.6}, 5, candidate.StatusReady)
	weak := f.addCandidate(t, "Pastry chef.", []float32{0, 1}, 0, candidate.StatusReady)
	f.addCandidate(t, "Go and Kafka expert", []float32{1, 0}, 10, candidate.StatusParsed)

	ms, err := f.uc.Run(ctx, f.owner, f.job.ID)
	require.NoError(t, err)
	require.Len(t, ms, 2)

	top := ms[0]
	assert.Equal(t, strong.ID, top.CandidateID)
	assert.InDelta(t, 0.8, top.SemanticScore, 1e-6)
	assert.InDelta(t, 0.5, top.SkillScore, 1e-9)
	assert.InDelta(t, 0.5, top.ExperienceScore, 1e-9)
	assert.InDelta(t, 0.68, top.FinalScore, 1e-6)
	assert.Equal(t, []string{"Go"}, top.MatchedSkills)
	assert.Equal(t, []string{"Kafka"}, top.MissingSkills)
	require.Len(t, top.EvidenceSnippets, 1)
	assert.Equal(t, "Go", top.EvidenceSnippets[0].Skill)
	assert.Contains(t, top.EvidenceSnippets[0].Snippet, "Go and gRPC")
	require.NotNil(t, top.Candidate)
	assert.Equal(t, "ready", top.Candidate.Status)

	assert.Equal(t, weak.ID, ms[1].CandidateID)
	assert.Zero(t, ms[1].FinalScore)
	assert.Empty(t, ms[1].EvidenceSnippets)
}

func TestRunIsIdempotentAndKeepsUserFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCandidate(t, "Go, Kafka", []float32{1, 0}, 3, candidate.StatusReady)

	first, err := f.uc.Run(ctx, f.owner, f.job.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = f.uc.SetShortlisted(ctx, f.owner, first[0].ID, true)
	require.NoError(t, err)
	_, err = f.uc.SetNotes(ctx, f.owner, first[0].ID, "  strong systems background ")
	require.NoError(t, err)

	second, err := f.uc.Run(ctx, f.owner, f.job.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].FinalScore, second[0].FinalScore)
	assert.True(t, second[0].Shortlisted)
	assert.Equal(t, "  strong systems background ", second[0].Notes)

	listed, err := f.uc.List(ctx, f.owner, f.job.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestRunNegativeSemanticIsNotClamped(t *testing.T) {
	f := newFixture(t)
	f.addCandidate(t, "nothing relevant", []float32{-1, 0}, 0, candidate.StatusReady)

	ms, err := f.uc.Run(context.Background(), f.owner, f.job.ID)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.InDelta(t, -0.6, ms[0].FinalScore, 1e-9)
}

func TestRunMismatchedDimensionsScoreZeroSemantic(t *testing.T) {
	f := newFixture(t)
	f.addCandidate(t, "Go", []float32{1, 0, 0}, 0, candidate.StatusReady)

	ms, err := f.uc.Run(context.Background(), f.owner, f.job.ID)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Zero(t, ms[0].SemanticScore)
	assert.InDelta(t, 0.15, ms[0].FinalScore, 1e-9)
}

func TestOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCandidate(t, "Go", []float32{1, 0}, 1, candidate.StatusReady)
	stranger := uuid.New()

	_, err := f.uc.Run(ctx, stranger, f.job.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)

	_, err = f.uc.List(ctx, stranger, f.job.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)

	ms, err := f.uc.Run(ctx, f.owner, f.job.ID)
	require.NoError(t, err)
	_, err = f.uc.SetShortlisted(ctx, stranger, ms[0].ID, true)
	assert.ErrorIs(t, err, match.ErrNotFound)
	_, err = f.uc.SetNotes(ctx, f.owner, uuid.New(), "x")
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestSortByScoreIsStable(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ms := []match.Match{
		{CandidateID: a, FinalScore: 0.5},
		{CandidateID: b, FinalScore: 0.9},
		{CandidateID: c, FinalScore: 0.5},
	}
	match.SortByScore(ms)
	assert.Equal(t, []uuid.UUID{b, a, c}, []uuid.UUID{ms[0].CandidateID, ms[1].CandidateID, ms[2].CandidateID})
}
