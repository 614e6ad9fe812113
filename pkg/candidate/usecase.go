package candidate

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/talentmatch/pkg/embedding"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/logger"
	"github.com/artem13815/talentmatch/pkg/nlp"
)

// UseCase: загрузка резюме и конвейер parse -> embed.
type UseCase interface {
	Upload(ctx context.Context, ownerID, jobID uuid.UUID, files []File) ([]Candidate, error)
	// Process runs the pipeline for every id independently and returns the candidates
	// that reached ready, in input order. Per-candidate failures are logged, not returned.
	Process(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]Candidate, error)
	ListByJob(ctx context.Context, ownerID, jobID uuid.UUID) ([]Candidate, error)
	// ProcessStale re-runs the pipeline for candidates stuck before ready.
	ProcessStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// Options: ограничения конвейера.
type Options struct {
	Workers        int
	MaxUploadBytes int64
}

type service struct {
	repo     Repository
	jobs     job.Repository
	files    FileStore
	dict     *nlp.Dictionary
	embedder embedding.Embedder
	log      *zap.Logger
	opts     Options
	now      func() time.Time
}

func NewService(repo Repository, jobs job.Repository, files FileStore, dict *nlp.Dictionary,
	embedder embedding.Embedder, log *zap.Logger, opts Options) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	return &service{
		repo:     repo,
		jobs:     jobs,
		files:    files,
		dict:     dict,
		embedder: embedder,
		log:      log,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Upload(ctx context.Context, ownerID, jobID uuid.UUID, files []File) ([]Candidate, error) {
	if _, err := s.jobs.GetForOwner(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrValidation("No files uploaded")
	}
	for _, f := range files {
		if !IsSupported(f.Name) {
			return nil, ErrValidation(fmt.Sprintf("%s: unsupported file format, only pdf, docx and txt are allowed", f.Name))
		}
		if int64(len(f.Data)) > s.opts.MaxUploadBytes {
			return nil, ErrValidation(fmt.Sprintf("%s: file is larger than %d bytes", f.Name, s.opts.MaxUploadBytes))
		}
		if len(f.Data) == 0 {
			return nil, ErrValidation(fmt.Sprintf("%s: file is empty", f.Name))
		}
	}

	created := make([]Candidate, 0, len(files))
	for _, f := range files {
		path, err := s.files.Save(ctx, f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		now := s.now()
		c := Candidate{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			JobID:        jobID,
			Name:         nameFromFile(f.Name),
			FileName:     f.Name,
			ResumePath:   path,
			ParsedSkills: []string{},
			Status:       StatusUploaded,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, c); err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	s.log.Info("resumes uploaded", zap.String("job_id", jobID.String()), zap.Int("count", len(created)))
	return created, nil
}

func (s *service) Process(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]Candidate, error) {
	if len(ids) == 0 {
		return nil, ErrValidation("candidateIds must be a non-empty array")
	}
	results := make([]*Candidate, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, id := range ids {
		g.Go(func() error {
			c, err := s.processOne(gctx, ownerID, id)
			if err != nil {
				s.log.Warn("candidate pipeline failed",
					zap.String("candidate_id", id.String()),
					zap.Error(err))
				return nil
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	processed := make([]Candidate, 0, len(ids))
	for _, c := range results {
		if c != nil {
			processed = append(processed, *c)
		}
	}
	return processed, nil
}

// processOne: parse, затем embed. nil-кандидат без ошибки означает, что резюме отклонено.
func (s *service) processOne(ctx context.Context, ownerID, id uuid.UUID) (*Candidate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	log := s.log.With(zap.String("candidate_id", id.String()), zap.String("job_id", c.JobID.String()))

	if c.Status == StatusUploaded || c.Status == StatusError || c.ResumeText == "" {
		parsed, ok, err := s.parse(ctx, c)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Warn("skipping unreadable resume", zap.String("file", c.FileName))
			return nil, fmt.Errorf("resume %s rejected: %s", c.FileName, UnreadableResumeMessage)
		}
		if err := s.repo.SetParsed(ctx, id, parsed); err != nil {
			return nil, err
		}
		c.ResumeText = parsed.Text
		c.ParsedSkills = parsed.Skills
		c.YearsExperience = parsed.YearsExperience
		c.Name = parsed.Name
		c.Email = parsed.Email
		c.Status = StatusParsed
		c.ErrorMessage = ""
	}

	vec, err := s.embedder.Embed(ctx, c.ResumeText)
	if err != nil {
		return nil, fmt.Errorf("embed resume: %w", err)
	}
	if err := s.repo.SetEmbedding(ctx, id, vec); err != nil {
		return nil, err
	}
	c.Embedding = vec
	c.Status = StatusReady
	c.UpdatedAt = s.now()
	log.Debug("candidate ready",
		zap.Strings("skills", c.ParsedSkills),
		zap.Float64("years", c.YearsExperience),
		zap.String("excerpt", logger.TruncateForLog(c.ResumeText, 120)))
	return &c, nil
}

// parse returns ok=false after marking the candidate as error when the text is unusable.
func (s *service) parse(ctx context.Context, c Candidate) (Parsed, bool, error) {
	data, err := s.files.Read(ctx, c.ResumePath)
	if err != nil {
		return Parsed{}, false, err
	}
	text, perr := ParseResumeText(c.FileName, data)
	if perr != nil || utf8.RuneCountInString(text) < MinResumeChars {
		if perr != nil {
			s.log.Debug("resume text extraction failed", zap.String("candidate_id", c.ID.String()), zap.Error(perr))
		}
		if err := s.repo.SetError(ctx, c.ID, UnreadableResumeMessage); err != nil {
			return Parsed{}, false, err
		}
		return Parsed{}, false, nil
	}
	return Parsed{
		Text:            text,
		Skills:          s.dict.ExtractSkills(text),
		YearsExperience: nlp.EstimateYearsExperience(text),
		Name:            detectName(text, c.FileName),
		Email:           detectEmail(text),
	}, true, nil
}

func (s *service) ListByJob(ctx context.Context, ownerID, jobID uuid.UUID) ([]Candidate, error) {
	if _, err := s.jobs.GetForOwner(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	return s.repo.ListByJob(ctx, jobID)
}

func (s *service) ProcessStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	stale, err := s.repo.ListStale(ctx, s.now().Add(-olderThan), limit)
	if err != nil {
		return 0, err
	}
	byOwner := make(map[uuid.UUID][]uuid.UUID)
	var owners []uuid.UUID
	for _, c := range stale {
		if _, ok := byOwner[c.OwnerID]; !ok {
			owners = append(owners, c.OwnerID)
		}
		byOwner[c.OwnerID] = append(byOwner[c.OwnerID], c.ID)
	}
	ready := 0
	for _, owner := range owners {
		done, err := s.Process(ctx, owner, byOwner[owner])
		if err != nil {
			return ready, err
		}
		ready += len(done)
	}
	return ready, nil
}
