package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/artem13815/talentmatch/pkg/candidate"
)

// CandidateRepository хранит кандидатов и результаты конвейера.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

const candidateColumns = `id, owner_id, job_id, name, email, file_name, resume_path, resume_text,
	parsed_skills, years_experience, embedding, status, error_message, created_at, updated_at`

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO candidates (`+candidateColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`, c.ID, c.OwnerID, c.JobID, c.Name, c.Email, c.FileName, c.ResumePath, c.ResumeText,
		orEmpty(c.ParsedSkills), c.YearsExperience, toVector(c.Embedding), string(c.Status), c.ErrorMessage,
		c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CandidateRepository) Get(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, err := scanCandidate(r.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]candidate.Candidate, error) {
	return r.query(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE job_id = $1 ORDER BY created_at DESC, id`, jobID)
}

func (r *CandidateRepository) ListReadyByJob(ctx context.Context, jobID uuid.UUID) ([]candidate.Candidate, error) {
	return r.query(ctx, `
SELECT `+candidateColumns+` FROM candidates
WHERE job_id = $1 AND status = 'ready'
ORDER BY created_at, id
`, jobID)
}

func (r *CandidateRepository) ListStale(ctx context.Context, before time.Time, limit int) ([]candidate.Candidate, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.query(ctx, `
SELECT `+candidateColumns+` FROM candidates
WHERE status IN ('uploaded', 'parsed') AND updated_at < $1
ORDER BY updated_at
LIMIT $2
`, before, limit)
}

func (r *CandidateRepository) SetParsed(ctx context.Context, id uuid.UUID, p candidate.Parsed) error {
	return r.exec(ctx, `
UPDATE candidates SET resume_text = $2, parsed_skills = $3, years_experience = $4, name = $5, email = $6,
	status = 'parsed', error_message = '', updated_at = now()
WHERE id = $1
`, id, p.Text, orEmpty(p.Skills), p.YearsExperience, p.Name, p.Email)
}

func (r *CandidateRepository) SetEmbedding(ctx context.Context, id uuid.UUID, vec []float32) error {
	return r.exec(ctx, `
UPDATE candidates SET embedding = $2, status = 'ready', updated_at = now() WHERE id = $1
`, id, toVector(vec))
}

func (r *CandidateRepository) SetError(ctx context.Context, id uuid.UUID, message string) error {
	return r.exec(ctx, `
UPDATE candidates SET status = 'error', error_message = $2, updated_at = now() WHERE id = $1
`, id, message)
}

func (r *CandidateRepository) exec(ctx context.Context, sql string, args ...any) error {
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) query(ctx context.Context, sql string, args ...any) ([]candidate.Candidate, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []candidate.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var status string
	var vec *pgvector.Vector
	if err := row.Scan(&c.ID, &c.OwnerID, &c.JobID, &c.Name, &c.Email, &c.FileName, &c.ResumePath, &c.ResumeText,
		&c.ParsedSkills, &c.YearsExperience, &vec, &status, &c.ErrorMessage, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return candidate.Candidate{}, err
	}
	c.Status = candidate.Status(status)
	c.Embedding = fromVector(vec)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

var _ candidate.Repository = (*CandidateRepository)(nil)
