package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/talentmatch/pkg/dashboard"
)

// DashboardRepository считает агрегаты прямо в SQL.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

func (r *DashboardRepository) Totals(ctx context.Context, ownerID uuid.UUID) (dashboard.Totals, error) {
	var t dashboard.Totals
	err := r.pool.QueryRow(ctx, `
SELECT
	(SELECT count(*) FROM jobs WHERE owner_id = $1),
	(SELECT count(*) FROM candidates c JOIN jobs j ON j.id = c.job_id WHERE j.owner_id = $1 AND c.owner_id = $1),
	count(m.id),
	count(m.id) FILTER (WHERE m.shortlisted),
	COALESCE(avg(m.final_score), 0)
FROM matches m JOIN jobs j ON j.id = m.job_id
WHERE j.owner_id = $1
`, ownerID).Scan(&t.Jobs, &t.Candidates, &t.Matches, &t.Shortlisted, &t.AvgFinalScore)
	return t, err
}

func (r *DashboardRepository) DailyUploads(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error) {
	return r.daily(ctx, `
SELECT to_char(c.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, count(*)
FROM candidates c JOIN jobs j ON j.id = c.job_id
WHERE j.owner_id = $1 AND c.owner_id = $1 AND c.created_at >= $2
GROUP BY day
`, ownerID, since)
}

func (r *DashboardRepository) DailyMatches(ctx context.Context, ownerID uuid.UUID, since time.Time) (map[string]int, error) {
	return r.daily(ctx, `
SELECT to_char(m.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, count(*)
FROM matches m JOIN jobs j ON j.id = m.job_id
WHERE j.owner_id = $1 AND m.created_at >= $2
GROUP BY day
`, ownerID, since)
}

func (r *DashboardRepository) ScoreHistogram(ctx context.Context, ownerID uuid.UUID) (map[int]int, error) {
	rows, err := r.pool.Query(ctx, `
SELECT LEAST(GREATEST(floor(m.final_score * 100 / 10)::int, 0), $2::int - 1) AS bucket, count(*)
FROM matches m JOIN jobs j ON j.id = m.job_id
WHERE j.owner_id = $1
GROUP BY bucket
`, ownerID, dashboard.BucketCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[int]int)
	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		out[bucket] = count
	}
	return out, rows.Err()
}

func (r *DashboardRepository) daily(ctx context.Context, sql string, ownerID uuid.UUID, since time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, sql, ownerID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		out[day] = count
	}
	return out, rows.Err()
}

var _ dashboard.Repository = (*DashboardRepository)(nil)
