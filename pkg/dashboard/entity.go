package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// ActivityDays: длина ряда активности.
	ActivityDays = 14
	// BucketCount buckets of 10 percentage points each: 0, 10, ..., 90.
	BucketCount = 10
	dateLayout  = "2006-01-02"
)

// Stats: сводка по вакансиям HR-пользователя.
type Stats struct {
	TotalJobs             int     `json:"totalJobs"`
	TotalCandidates       int     `json:"totalCandidates"`
	AvgMatchScore         float64 `json:"avgMatchScore"`
	ShortlistedCandidates int     `json:"shortlistedCandidates"`
}

type ActivityPoint struct {
	Date    string `json:"date"`
	Uploads int    `json:"uploads"`
	Matches int    `json:"matches"`
}

type Bucket struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// Totals are raw aggregates; AvgFinalScore is in [0,1] scale.
type Totals struct {
	Jobs          int
	Candidates    int
	Matches       int
	Shortlisted   int
	AvgFinalScore float64
}

// Repository: агрегаты по данным владельца.
type Repository interface {
	Totals(ctx context.Context, ownerID uuid.UUID) (Totals, error)
	// DailyUploads/DailyMatches считают записи с created_at >= since по UTC-дням "YYYY-MM-DD".
	DailyUploads(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error)
	DailyMatches(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error)
	// ScoreHistogram maps BucketIndex to match count.
	ScoreHistogram(ctx context.Context, ownerID uuid.UUID) (map[int]int, error)
}

// BucketIndex puts a final score into one of the ten buckets.
// Scores of 1.0 and above land in the last bucket, negative ones in the first.
func BucketIndex(finalScore float64) int {
	i := int(math.Floor(finalScore * 100 / 10))
	return min(max(i, 0), BucketCount-1)
}

// DayKey formats t as a UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
