package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talentmatch/api/http/presenter"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

type JobHandler struct {
	uc job.UseCase
}

func NewJobHandler(uc job.UseCase) *JobHandler { return &JobHandler{uc: uc} }

type createJobRequest struct {
	JobTitle         string `json:"jobTitle" validate:"required"`
	JobDescription   string `json:"jobDescription" validate:"required"`
	RequiredSkills   []any  `json:"requiredSkills" validate:"required,min=1"`
	NiceToHaveSkills []any  `json:"niceToHaveSkills"`
	ExperienceLevel  string `json:"experienceLevel"`
}

type updateJobRequest struct {
	JobTitle         *string `json:"jobTitle"`
	JobDescription   *string `json:"jobDescription"`
	RequiredSkills   []any   `json:"requiredSkills"`
	NiceToHaveSkills []any   `json:"niceToHaveSkills"`
	ExperienceLevel  *string `json:"experienceLevel"`
}

type jobResponse struct {
	Message string  `json:"message"`
	Job     job.Job `json:"job"`
}

// @Summary     Создать вакансию
// @Description Навыки нормализуются по словарю, описание вакансии векторизуется.
// @Tags        Вакансии
// @Accept      json
// @Produce     json
// @Param       input body createJobRequest true "Данные вакансии"
// @Security    BearerAuth
// @Success     201 {object} jobResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	if len(c.Body()) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "Request body cannot be empty")
	}
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "jobTitle, jobDescription, and requiredSkills are required")
	}
	j, err := h.uc.Create(c.Context(), uid, job.Input{
		Title:            req.JobTitle,
		Description:      req.JobDescription,
		RequiredSkills:   req.RequiredSkills,
		NiceToHaveSkills: req.NiceToHaveSkills,
		ExperienceLevel:  req.ExperienceLevel,
	})
	if err != nil {
		return fail(c, "Failed to create job", err)
	}
	return presenter.JSON(c, http.StatusCreated, jobResponse{Message: "Job created successfully", Job: j})
}

// @Summary  Список вакансий
// @Tags     Вакансии
// @Produce  json
// @Param    limit  query int false "Размер страницы (по умолчанию 50)"
// @Param    offset query int false "Смещение"
// @Security BearerAuth
// @Success  200 {array} job.Job
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return fail(c, "Failed to fetch jobs", err)
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// @Summary  Получить вакансию
// @Tags     Вакансии
// @Produce  json
// @Param    jobId path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success  200 {object} job.Job
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{jobId} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	j, err := h.uc.Get(c.Context(), uid, id)
	if err != nil {
		return fail(c, "Failed to fetch job", err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// @Summary     Обновить вакансию
// @Description Частичное обновление; смена описания пересчитывает эмбеддинг.
// @Tags        Вакансии
// @Accept      json
// @Produce     json
// @Param       jobId path string true "ID вакансии (UUID)"
// @Param       input body updateJobRequest true "Изменяемые поля"
// @Security    BearerAuth
// @Success     200 {object} jobResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /jobs/{jobId} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	var req updateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	j, err := h.uc.Update(c.Context(), uid, id, job.Patch{
		Title:            req.JobTitle,
		Description:      req.JobDescription,
		RequiredSkills:   req.RequiredSkills,
		NiceToHaveSkills: req.NiceToHaveSkills,
		ExperienceLevel:  req.ExperienceLevel,
	})
	if err != nil {
		return fail(c, "Failed to update job", err)
	}
	return presenter.JSON(c, http.StatusOK, jobResponse{Message: "Job updated successfully", Job: j})
}

// @Summary  Удалить вакансию
// @Tags     Вакансии
// @Produce  json
// @Param    jobId path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success  200 {object} map[string]string
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{jobId} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return fail(c, "Failed to delete job", err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Job deleted successfully"})
}
