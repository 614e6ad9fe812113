package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/api/http/presenter"
	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

type CandidateHandler struct {
	uc       candidate.UseCase
	maxBytes int64
}

func NewCandidateHandler(uc candidate.UseCase, maxUploadBytes int64) *CandidateHandler {
	return &CandidateHandler{uc: uc, maxBytes: maxUploadBytes}
}

type processRequest struct {
	CandidateIDs []string `json:"candidateIds" validate:"required,min=1,dive,uuid"`
}

type uploadResponse struct {
	Message    string                `json:"message"`
	Candidates []candidate.Candidate `json:"candidates"`
}

type processResponse struct {
	Message   string                `json:"message"`
	Processed []candidate.Candidate `json:"processed"`
}

// @Summary     Загрузить резюме
// @Description Принимает pdf, docx и txt в поле files; кандидаты создаются в статусе uploaded.
// @Tags        Кандидаты
// @Accept      multipart/form-data
// @Produce     json
// @Param       jobId path     string true "ID вакансии (UUID)"
// @Param       files formData file   true "Файлы резюме"
// @Security    BearerAuth
// @Success     201 {object} uploadResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /candidates/{jobId}/upload [post]
func (h *CandidateHandler) Upload(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	var headers []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		headers = form.File["files"]
	}
	files := make([]candidate.File, 0, len(headers))
	for _, fh := range headers {
		if h.maxBytes > 0 && fh.Size > h.maxBytes {
			return presenter.Error(c, http.StatusBadRequest,
				fmt.Sprintf("%s: file is larger than %d bytes", fh.Filename, h.maxBytes))
		}
		data, err := readFile(fh)
		if err != nil {
			return presenter.Fail(c, http.StatusInternalServerError, "Failed to upload resumes", err)
		}
		files = append(files, candidate.File{Name: fh.Filename, Data: data})
	}
	created, err := h.uc.Upload(c.Context(), uid, jobID, files)
	if err != nil {
		return fail(c, "Failed to upload resumes", err)
	}
	return presenter.JSON(c, http.StatusCreated, uploadResponse{Message: "Resumes uploaded successfully", Candidates: created})
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// @Summary     Обработать кандидатов
// @Description Извлекает текст и навыки, затем строит эмбеддинг. В ответе только кандидаты в статусе ready.
// @Tags        Кандидаты
// @Accept      json
// @Produce     json
// @Param       input body processRequest true "ID кандидатов"
// @Security    BearerAuth
// @Success     200 {object} processResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /candidates/process [post]
func (h *CandidateHandler) Process(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req processRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "candidateIds must be an array")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "candidateIds must be a non-empty array of UUIDs")
	}
	ids := make([]uuid.UUID, 0, len(req.CandidateIDs))
	for _, raw := range req.CandidateIDs {
		ids = append(ids, uuid.MustParse(raw))
	}
	processed, err := h.uc.Process(c.Context(), uid, ids)
	if err != nil {
		return fail(c, "Failed to process candidates", err)
	}
	return presenter.JSON(c, http.StatusOK, processResponse{Message: "Candidate processing complete", Processed: processed})
}

// @Summary  Кандидаты вакансии
// @Tags     Кандидаты
// @Produce  json
// @Param    jobId path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success  200 {array} candidate.Candidate
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /candidates/{jobId} [get]
func (h *CandidateHandler) ListByJob(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	list, err := h.uc.ListByJob(c.Context(), uid, jobID)
	if err != nil {
		return fail(c, "Failed to fetch candidates", err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}
