package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/artem13815/talentmatch/pkg/job"
)

// JobRepository хранит вакансии вместе с эмбеддингом описания.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, owner_id, title, description, required_skills, nice_to_have_skills,
	experience_level, embedding, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, j.ID, j.OwnerID, j.Title, j.Description, orEmpty(j.RequiredSkills), orEmpty(j.NiceToHaveSkills),
		string(j.ExperienceLevel), toVector(j.Embedding), j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *JobRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM jobs WHERE owner_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`, ownerID, limit, max(offset, 0))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE jobs SET title = $3, description = $4, required_skills = $5, nice_to_have_skills = $6,
	experience_level = $7, embedding = $8, updated_at = $9
WHERE id = $1 AND owner_id = $2
`, j.ID, j.OwnerID, j.Title, j.Description, orEmpty(j.RequiredSkills), orEmpty(j.NiceToHaveSkills),
		string(j.ExperienceLevel), toVector(j.Embedding), j.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

// DeleteForOwner relies on ON DELETE CASCADE for candidates and matches.
func (r *JobRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var level string
	var vec *pgvector.Vector
	if err := row.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Description, &j.RequiredSkills, &j.NiceToHaveSkills,
		&level, &vec, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return job.Job{}, err
	}
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Embedding = fromVector(vec)
	j.CreatedAt = j.CreatedAt.UTC()
	j.UpdatedAt = j.UpdatedAt.UTC()
	return j, nil
}

var _ job.Repository = (*JobRepository)(nil)
