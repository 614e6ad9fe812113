package candidate_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/embedding"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/nlp"
	"github.com/artem13815/talentmatch/pkg/repository/memory"
)

const goodResume = `Jane Doe
jane.DOE@example.com
Backend developer with 6 years of experience building Go services,
PostgreSQL schemas and Kubernetes deployments.`

type fixture struct {
	store *memory.Store
	uc    candidate.UseCase
	owner uuid.UUID
	job   job.Job
}

func newFixture(t *testing.T, emb embedding.Embedder) *fixture {
	t.Helper()
	if emb == nil {
		emb = embedding.NewHashing(16)
	}
	files, err := candidate.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	s := memory.NewStore()
	owner := uuid.New()
	j := job.Job{ID: uuid.New(), OwnerID: owner, Title: "Go dev", RequiredSkills: []string{"Go"}, CreatedAt: time.Now()}
	require.NoError(t, s.Jobs().Create(context.Background(), j))
	uc := candidate.NewService(s.Candidates(), s.Jobs(), files, nlp.Default(), emb, zap.NewNop(),
		candidate.Options{Workers: 2, MaxUploadBytes: 1 << 10})
	return &fixture{store: s, uc: uc, owner: owner, job: j}
}

func (f *fixture) upload(t *testing.T, files ...candidate.File) []candidate.Candidate {
	t.Helper()
	cs, err := f.uc.Upload(context.Background(), f.owner, f.job.ID, files)
	require.NoError(t, err)
	return cs
}

func TestUploadCreatesUploadedCandidates(t *testing.T) {
	f := newFixture(t, nil)
	cs := f.upload(t,
		candidate.File{Name: "jane_doe.txt", Data: []byte(goodResume)},
		candidate.File{Name: "john-smith.TXT", Data: []byte("x")},
	)
	require.Len(t, cs, 2)
	for _, c := range cs {
		assert.Equal(t, candidate.StatusUploaded, c.Status)
		assert.Equal(t, f.job.ID, c.JobID)
		assert.NotEmpty(t, c.ResumePath)
	}
	assert.Equal(t, "jane doe", cs[0].Name)
	assert.Equal(t, "john smith", cs[1].Name)

	listed, err := f.uc.ListByJob(context.Background(), f.owner, f.job.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestUploadValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	var verr candidate.ErrValidation

	_, err := f.uc.Upload(ctx, f.owner, f.job.ID, nil)
	assert.True(t, errors.As(err, &verr))

	_, err = f.uc.Upload(ctx, f.owner, f.job.ID, []candidate.File{{Name: "cv.exe", Data: []byte("x")}})
	assert.True(t, errors.As(err, &verr))

	_, err = f.uc.Upload(ctx, f.owner, f.job.ID, []candidate.File{{Name: "cv.txt", Data: make([]byte, 2<<10)}})
	assert.True(t, errors.As(err, &verr))

	_, err = f.uc.Upload(ctx, uuid.New(), f.job.ID, []candidate.File{{Name: "cv.txt", Data: []byte("x")}})
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestProcessPipeline(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	cs := f.upload(t,
		candidate.File{Name: "short.txt", Data: []byte("too short")},
		candidate.File{Name: "jane.txt", Data: []byte(goodResume)},
	)

	processed, err := f.uc.Process(ctx, f.owner, []uuid.UUID{cs[0].ID, cs[1].ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, processed, 1)

	ready := processed[0]
	assert.Equal(t, cs[1].ID, ready.ID)
	assert.Equal(t, candidate.StatusReady, ready.Status)
	assert.ElementsMatch(t, []string{"PostgreSQL", "Kubernetes"}, ready.ParsedSkills)
	assert.Equal(t, 6.0, ready.YearsExperience)
	assert.Equal(t, "Jane Doe", ready.Name)
	assert.Equal(t, "jane.doe@example.com", ready.Email)
	assert.Len(t, ready.Embedding, 16)

	short, err := f.store.Candidates().Get(ctx, cs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusError, short.Status)
	assert.Equal(t, candidate.UnreadableResumeMessage, short.ErrorMessage)

	stored, err := f.store.Candidates().Get(ctx, cs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusReady, stored.Status)
	assert.True(t, strings.HasPrefix(stored.ResumeText, "Jane Doe"))
}

func TestProcessKeepsInputOrder(t *testing.T) {
	f := newFixture(t, nil)
	var files []candidate.File
	for i := range 5 {
		files = append(files, candidate.File{Name: "cv.txt", Data: []byte(goodResume + strings.Repeat(" more", i))})
	}
	cs := f.upload(t, files...)
	ids := []uuid.UUID{cs[4].ID, cs[1].ID, cs[3].ID, cs[0].ID, cs[2].ID}

	processed, err := f.uc.Process(context.Background(), f.owner, ids)
	require.NoError(t, err)
	require.Len(t, processed, 5)
	for i, c := range processed {
		assert.Equal(t, ids[i], c.ID)
	}
}

func TestProcessEmbeddingFailureLeavesParsed(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	emb := embedding.Func(func(ctx context.Context, text string) ([]float32, error) {
		if fail.Load() {
			return nil, errors.New("provider down")
		}
		return []float32{1, 2}, nil
	})
	f := newFixture(t, emb)
	ctx := context.Background()
	cs := f.upload(t, candidate.File{Name: "jane.txt", Data: []byte(goodResume)})

	processed, err := f.uc.Process(ctx, f.owner, []uuid.UUID{cs[0].ID})
	require.NoError(t, err)
	assert.Empty(t, processed)

	c, err := f.store.Candidates().Get(ctx, cs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusParsed, c.Status)

	fail.Store(false)
	f.store.SetClock(func() time.Time { return time.Now().UTC().Add(-time.Hour) })
	require.NoError(t, f.store.Candidates().SetParsed(ctx, c.ID, candidate.Parsed{Text: c.ResumeText, Skills: c.ParsedSkills}))
	f.store.SetClock(func() time.Time { return time.Now().UTC() })

	n, err := f.uc.ProcessStale(ctx, time.Minute, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, err = f.store.Candidates().Get(ctx, cs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusReady, c.Status)
	assert.Equal(t, []float32{1, 2}, c.Embedding)
}

func TestProcessIgnoresForeignCandidates(t *testing.T) {
	f := newFixture(t, nil)
	cs := f.upload(t, candidate.File{Name: "jane.txt", Data: []byte(goodResume)})

	processed, err := f.uc.Process(context.Background(), uuid.New(), []uuid.UUID{cs[0].ID})
	require.NoError(t, err)
	assert.Empty(t, processed)

	c, err := f.store.Candidates().Get(context.Background(), cs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusUploaded, c.Status)
}

func TestProcessRejectsEmptyList(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.uc.Process(context.Background(), f.owner, nil)
	var verr candidate.ErrValidation
	assert.True(t, errors.As(err, &verr))
}
