package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	totals  Totals
	uploads map[string]int
	matches map[string]int
	hist    map[int]int
	since   time.Time
}

func (f *fakeRepo) Totals(context.Context, uuid.UUID) (Totals, error) { return f.totals, nil }

func (f *fakeRepo) DailyUploads(_ context.Context, _ uuid.UUID, since time.Time) (map[string]int, error) {
	f.since = since
	return f.uploads, nil
}

func (f *fakeRepo) DailyMatches(context.Context, uuid.UUID, time.Time) (map[string]int, error) {
	return f.matches, nil
}

func (f *fakeRepo) ScoreHistogram(context.Context, uuid.UUID) (map[int]int, error) {
	return f.hist, nil
}

func TestStats(t *testing.T) {
	repo := &fakeRepo{totals: Totals{Jobs: 2, Candidates: 7, Matches: 4, Shortlisted: 1, AvgFinalScore: 0.42}}
	got, err := NewService(repo).Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalJobs)
	assert.Equal(t, 7, got.TotalCandidates)
	assert.InDelta(t, 42.0, got.AvgMatchScore, 1e-9)
	assert.Equal(t, 1, got.ShortlistedCandidates)

	got, err = NewService(&fakeRepo{}).Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, got)
}

func TestActivityZeroFilled(t *testing.T) {
	repo := &fakeRepo{
		uploads: map[string]int{"2026-03-14": 3, "2026-03-01": 1},
		matches: map[string]int{"2026-03-10": 2},
	}
	svc := &service{repo: repo, now: func() time.Time { return time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC) }}

	series, err := svc.Activity(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, series, ActivityDays)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.since)
	assert.Equal(t, ActivityPoint{Date: "2026-03-01", Uploads: 1}, series[0])
	assert.Equal(t, ActivityPoint{Date: "2026-03-10", Matches: 2}, series[9])
	assert.Equal(t, ActivityPoint{Date: "2026-03-14", Uploads: 3}, series[13])
}

func TestScoreDistribution(t *testing.T) {
	svc := NewService(&fakeRepo{hist: map[int]int{0: 2, 6: 1, 9: 4}})
	buckets, err := svc.ScoreDistribution(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, buckets, BucketCount)
	assert.Equal(t, Bucket{Bucket: 0, Count: 2}, buckets[0])
	assert.Equal(t, Bucket{Bucket: 60, Count: 1}, buckets[6])
	assert.Equal(t, Bucket{Bucket: 90, Count: 4}, buckets[9])
	assert.Equal(t, Bucket{Bucket: 50, Count: 0}, buckets[5])
}

func TestBucketIndex(t *testing.T) {
	cases := map[float64]int{-0.3: 0, 0: 0, 0.099: 0, 0.1: 1, 0.68: 6, 0.999: 9, 1: 9, 1.4: 9}
	for score, want := range cases {
		assert.Equal(t, want, BucketIndex(score), "score %v", score)
	}
}
