package job_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/embedding"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/nlp"
	"github.com/artem13815/talentmatch/pkg/repository/memory"
)

func newService(t *testing.T, emb embedding.Embedder) (job.UseCase, *memory.Store) {
	t.Helper()
	s := memory.NewStore()
	if emb == nil {
		emb = embedding.NewHashing(32)
	}
	return job.NewService(s.Jobs(), nlp.Default(), emb, zap.NewNop()), s
}

func TestCreateNormalizesSkills(t *testing.T) {
	uc, _ := newService(t, nil)
	owner := uuid.New()

	j, err := uc.Create(context.Background(), owner, job.Input{
		Title:            "  Backend engineer ",
		Description:      "Build Go services on Postgres",
		RequiredSkills:   []any{"  C++  ", "nodejs", 42, "Python"},
		NiceToHaveSkills: []any{"k8s"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", j.Title)
	assert.Equal(t, []string{"C++", "Node.js", "Python"}, j.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, j.NiceToHaveSkills)
	assert.Equal(t, job.LevelAny, j.ExperienceLevel)
	assert.Len(t, j.Embedding, 32)

	got, err := uc.Get(context.Background(), owner, j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.RequiredSkills, got.RequiredSkills)
}

func TestCreateValidation(t *testing.T) {
	uc, _ := newService(t, nil)
	owner := uuid.New()
	tests := []struct {
		name string
		in   job.Input
	}{
		{"no title", job.Input{Description: "d", RequiredSkills: []any{"Go"}}},
		{"no description", job.Input{Title: "t", RequiredSkills: []any{"Go"}}},
		{"no skills", job.Input{Title: "t", Description: "d"}},
		{"only non-strings", job.Input{Title: "t", Description: "d", RequiredSkills: []any{1, true}}},
		{"only blank names", job.Input{Title: "t", Description: "d", RequiredSkills: []any{"   ", ""}}},
		{"bad level", job.Input{Title: "t", Description: "d", RequiredSkills: []any{"Go"}, ExperienceLevel: "Guru"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), owner, tt.in)
			var verr job.ErrValidation
			assert.True(t, errors.As(err, &verr), "want validation error, got %v", err)
		})
	}
}

func TestCreatePropagatesEmbeddingFailure(t *testing.T) {
	boom := errors.New("provider down")
	uc, s := newService(t, embedding.Func(func(ctx context.Context, text string) ([]float32, error) {
		return nil, boom
	}))
	owner := uuid.New()
	_, err := uc.Create(context.Background(), owner, job.Input{Title: "t", Description: "d", RequiredSkills: []any{"Go"}})
	assert.ErrorIs(t, err, boom)

	jobs, err := s.Jobs().ListByOwner(context.Background(), owner, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestUpdate(t *testing.T) {
	var calls int
	uc, _ := newService(t, embedding.Func(func(ctx context.Context, text string) ([]float32, error) {
		calls++
		return []float32{float32(calls)}, nil
	}))
	ctx := context.Background()
	owner := uuid.New()
	j, err := uc.Create(ctx, owner, job.Input{Title: "t", Description: "first", RequiredSkills: []any{"go"}})
	require.NoError(t, err)

	level := "senior"
	updated, err := uc.Update(ctx, owner, j.ID, job.Patch{
		RequiredSkills:  []any{"js", "golang"},
		ExperienceLevel: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript", "Go"}, updated.RequiredSkills)
	assert.Equal(t, job.LevelSenior, updated.ExperienceLevel)
	assert.Equal(t, 1, calls, "description unchanged, no re-embed")

	desc := "second"
	updated, err = uc.Update(ctx, owner, j.ID, job.Patch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Description)
	assert.Equal(t, []float32{2}, updated.Embedding)

	_, err = uc.Update(ctx, uuid.New(), j.ID, job.Patch{Description: &desc})
	assert.ErrorIs(t, err, job.ErrNotFound)

	_, err = uc.Update(ctx, owner, j.ID, job.Patch{RequiredSkills: []any{}})
	var verr job.ErrValidation
	assert.True(t, errors.As(err, &verr))

	_, err = uc.Update(ctx, owner, j.ID, job.Patch{RequiredSkills: []any{"  ", ""}})
	assert.True(t, errors.As(err, &verr))
}

func TestCreateDropsBlankSkillNames(t *testing.T) {
	uc, _ := newService(t, nil)
	j, err := uc.Create(context.Background(), uuid.New(), job.Input{
		Title:            "t",
		Description:      "d",
		RequiredSkills:   []any{"   ", "golang", ""},
		NiceToHaveSkills: []any{" "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, j.RequiredSkills)
	assert.Empty(t, j.NiceToHaveSkills)
}

func TestListAndDelete(t *testing.T) {
	uc, _ := newService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	for _, title := range []string{"a", "b"} {
		_, err := uc.Create(ctx, owner, job.Input{Title: title, Description: "desc " + title, RequiredSkills: []any{"Go"}})
		require.NoError(t, err)
	}
	jobs, err := uc.List(ctx, owner, 10, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	other, err := uc.List(ctx, uuid.New(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, uc.Delete(ctx, owner, jobs[0].ID))
	assert.ErrorIs(t, uc.Delete(ctx, owner, jobs[0].ID), job.ErrNotFound)
}

func TestParseExperienceLevel(t *testing.T) {
	for in, want := range map[string]job.ExperienceLevel{
		"":        job.LevelAny,
		"Fresher": job.LevelFresher,
		" mid ":   job.LevelMid,
		"JUNIOR":  job.LevelJunior,
	} {
		got, ok := job.ParseExperienceLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := job.ParseExperienceLevel("lead")
	assert.False(t, ok)
}
