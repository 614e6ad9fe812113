package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UseCase interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error)
	Activity(ctx context.Context, ownerID uuid.UUID) ([]ActivityPoint, error)
	ScoreDistribution(ctx context.Context, ownerID uuid.UUID) ([]Bucket, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error) {
	t, err := s.repo.Totals(ctx, ownerID)
	if err != nil {
		return Stats{}, err
	}
	if t.Jobs == 0 {
		return Stats{}, nil
	}
	return Stats{
		TotalJobs:             t.Jobs,
		TotalCandidates:       t.Candidates,
		AvgMatchScore:         t.AvgFinalScore * 100,
		ShortlistedCandidates: t.Shortlisted,
	}, nil
}

// Activity returns ActivityDays points, oldest first, zero-filled.
func (s *service) Activity(ctx context.Context, ownerID uuid.UUID) ([]ActivityPoint, error) {
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(ActivityDays - 1))

	uploads, err := s.repo.DailyUploads(ctx, ownerID, start)
	if err != nil {
		return nil, err
	}
	matches, err := s.repo.DailyMatches(ctx, ownerID, start)
	if err != nil {
		return nil, err
	}
	series := make([]ActivityPoint, 0, ActivityDays)
	for i := range ActivityDays {
		key := DayKey(start.AddDate(0, 0, i))
		series = append(series, ActivityPoint{Date: key, Uploads: uploads[key], Matches: matches[key]})
	}
	return series, nil
}

func (s *service) ScoreDistribution(ctx context.Context, ownerID uuid.UUID) ([]Bucket, error) {
	hist, err := s.repo.ScoreHistogram(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	buckets := make([]Bucket, 0, BucketCount)
	for i := range BucketCount {
		buckets = append(buckets, Bucket{Bucket: i * 10, Count: hist[i]})
	}
	return buckets, nil
}
