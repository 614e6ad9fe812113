package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/talentmatch/pkg/match"
)

// MatchRepository: матчи (вакансия, кандидат) с пометками HR.
type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

const matchColumns = `m.id, m.job_id, m.candidate_id, m.semantic_score, m.skill_score, m.experience_score,
	m.final_score, m.matched_skills, m.missing_skills, m.evidence_snippets, m.shortlisted, m.notes,
	m.created_at, m.updated_at`

const candidateSummaryColumns = `c.id, c.name, c.email, c.status, c.years_experience`

// Upsert touches only the scoring columns on conflict; shortlisted and notes keep their values.
func (r *MatchRepository) Upsert(ctx context.Context, res match.Result) (match.Match, error) {
	evidence, err := json.Marshal(orEmptyEvidence(res.EvidenceSnippets))
	if err != nil {
		return match.Match{}, fmt.Errorf("encode evidence: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO matches AS m (id, job_id, candidate_id, semantic_score, skill_score, experience_score,
	final_score, matched_skills, missing_skills, evidence_snippets)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (job_id, candidate_id) DO UPDATE SET
	semantic_score = EXCLUDED.semantic_score,
	skill_score = EXCLUDED.skill_score,
	experience_score = EXCLUDED.experience_score,
	final_score = EXCLUDED.final_score,
	matched_skills = EXCLUDED.matched_skills,
	missing_skills = EXCLUDED.missing_skills,
	evidence_snippets = EXCLUDED.evidence_snippets,
	updated_at = now()
RETURNING `+matchColumns,
		uuid.New(), res.JobID, res.CandidateID, res.SemanticScore, res.SkillScore, res.ExperienceScore,
		res.FinalScore, orEmpty(res.MatchedSkills), orEmpty(res.MissingSkills), evidence)
	return scanMatch(row)
}

func (r *MatchRepository) Get(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+matchColumns+`, `+candidateSummaryColumns+`
FROM matches m JOIN candidates c ON c.id = m.candidate_id
WHERE m.id = $1
`, id)
	m, err := scanMatchWithCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}

func (r *MatchRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]match.Match, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+matchColumns+`, `+candidateSummaryColumns+`
FROM matches m JOIN candidates c ON c.id = m.candidate_id
WHERE m.job_id = $1
ORDER BY m.final_score DESC, m.created_at, m.id
`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []match.Match{}
	for rows.Next() {
		m, err := scanMatchWithCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MatchRepository) SetShortlisted(ctx context.Context, id uuid.UUID, shortlisted bool) (match.Match, error) {
	return r.patch(ctx, `UPDATE matches SET shortlisted = $2, updated_at = now() WHERE id = $1`, id, shortlisted)
}

func (r *MatchRepository) SetNotes(ctx context.Context, id uuid.UUID, notes string) (match.Match, error) {
	return r.patch(ctx, `UPDATE matches SET notes = $2, updated_at = now() WHERE id = $1`, id, notes)
}

func (r *MatchRepository) patch(ctx context.Context, sql string, id uuid.UUID, value any) (match.Match, error) {
	tag, err := r.pool.Exec(ctx, sql, id, value)
	if err != nil {
		return match.Match{}, err
	}
	if tag.RowsAffected() == 0 {
		return match.Match{}, match.ErrNotFound
	}
	return r.Get(ctx, id)
}

func scanMatch(row pgx.Row) (match.Match, error) {
	var m match.Match
	var evidence []byte
	if err := row.Scan(&m.ID, &m.JobID, &m.CandidateID, &m.SemanticScore, &m.SkillScore, &m.ExperienceScore,
		&m.FinalScore, &m.MatchedSkills, &m.MissingSkills, &evidence, &m.Shortlisted, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return match.Match{}, err
	}
	return finishMatch(m, evidence)
}

func scanMatchWithCandidate(row pgx.Row) (match.Match, error) {
	var m match.Match
	var evidence []byte
	var cs match.CandidateSummary
	if err := row.Scan(&m.ID, &m.JobID, &m.CandidateID, &m.SemanticScore, &m.SkillScore, &m.ExperienceScore,
		&m.FinalScore, &m.MatchedSkills, &m.MissingSkills, &evidence, &m.Shortlisted, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
		&cs.ID, &cs.Name, &cs.Email, &cs.Status, &cs.YearsExperience); err != nil {
		return match.Match{}, err
	}
	m.Candidate = &cs
	return finishMatch(m, evidence)
}

func finishMatch(m match.Match, evidence []byte) (match.Match, error) {
	if err := json.Unmarshal(evidence, &m.EvidenceSnippets); err != nil {
		return match.Match{}, fmt.Errorf("decode evidence: %w", err)
	}
	m.EvidenceSnippets = orEmptyEvidence(m.EvidenceSnippets)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func orEmptyEvidence(ev []match.Evidence) []match.Evidence {
	if ev == nil {
		return []match.Evidence{}
	}
	return ev
}

var _ match.Repository = (*MatchRepository)(nil)
