package candidate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status: стадия конвейера обработки резюме.
type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusParsed   Status = "parsed"
	StatusReady    Status = "ready"
	StatusError    Status = "error"
)

// MinResumeChars: короче этого текст считается нераспознанным.
const MinResumeChars = 30

// UnreadableResumeMessage is stored on candidates whose resume text is unusable.
const UnreadableResumeMessage = "Resume content too short or unreadable. Please upload a text-based PDF."

// Candidate: загруженное резюме и результаты его обработки.
// Только кандидаты в статусе ready участвуют в подборе.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"uploadedBy"`
	JobID           uuid.UUID `json:"uploadedForJob"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	FileName        string    `json:"fileName"`
	ResumePath      string    `json:"resumeUrl"`
	ResumeText      string    `json:"resumeText"`
	ParsedSkills    []string  `json:"parsedSkills"`
	YearsExperience float64   `json:"yearsExperience"`
	Embedding       []float32 `json:"-"`
	Status          Status    `json:"status"`
	ErrorMessage    string    `json:"errorMessage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Parsed: итог разбора текста резюме.
type Parsed struct {
	Text            string
	Skills          []string
	YearsExperience float64
	Name            string
	Email           string
}

// File is one uploaded resume.
type File struct {
	Name string
	Data []byte
}

var ErrNotFound = errors.New("candidate not found")

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository: порт хранения кандидатов.
type Repository interface {
	Create(ctx context.Context, c Candidate) error
	Get(ctx context.Context, id uuid.UUID) (Candidate, error)
	// ListByJob: новые сверху.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Candidate, error)
	ListReadyByJob(ctx context.Context, jobID uuid.UUID) ([]Candidate, error)
	// ListStale returns uploaded/parsed candidates not touched since before.
	ListStale(ctx context.Context, before time.Time, limit int) ([]Candidate, error)
	SetParsed(ctx context.Context, id uuid.UUID, p Parsed) error
	SetEmbedding(ctx context.Context, id uuid.UUID, vec []float32) error
	SetError(ctx context.Context, id uuid.UUID, message string) error
}

// FileStore keeps raw resume files.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Read(ctx context.Context, path string) ([]byte, error)
}
