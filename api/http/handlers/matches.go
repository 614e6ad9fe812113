package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talentmatch/api/http/presenter"
	"github.com/artem13815/talentmatch/pkg/match"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

type MatchHandler struct {
	uc match.UseCase
}

func NewMatchHandler(uc match.UseCase) *MatchHandler { return &MatchHandler{uc: uc} }

type runResponse struct {
	Message string        `json:"message"`
	Matches []match.Match `json:"matches"`
}

type matchResponse struct {
	Message string      `json:"message"`
	Match   match.Match `json:"match"`
}

type shortlistRequest struct {
	Shortlisted *bool `json:"shortlisted"`
}

type notesRequest struct {
	Notes *string `json:"notes"`
}

// @Summary     Запустить подбор
// @Description Оценивает всех кандидатов вакансии в статусе ready; shortlisted и notes сохраняются.
// @Tags        Подбор
// @Produce     json
// @Param       jobId path string true "ID вакансии (UUID)"
// @Security    BearerAuth
// @Success     200 {object} runResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /matches/{jobId}/run [post]
func (h *MatchHandler) Run(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	matches, err := h.uc.Run(c.Context(), uid, jobID)
	if err != nil {
		return fail(c, "Failed to match candidates", err)
	}
	return presenter.JSON(c, http.StatusOK, runResponse{Message: "Matching complete", Matches: matches})
}

// @Summary  Результаты подбора
// @Tags     Подбор
// @Produce  json
// @Param    jobId path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success  200 {array} match.Match
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /matches/{jobId} [get]
func (h *MatchHandler) List(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Job ID")
	}
	matches, err := h.uc.List(c.Context(), uid, jobID)
	if err != nil {
		return fail(c, "Failed to fetch matches", err)
	}
	return presenter.JSON(c, http.StatusOK, matches)
}

// @Summary     Шортлист
// @Description Без тела запроса кандидат добавляется в шортлист; {"shortlisted": false} снимает отметку.
// @Tags        Подбор
// @Accept      json
// @Produce     json
// @Param       matchId path string           true  "ID результата (UUID)"
// @Param       input   body shortlistRequest false "Флаг"
// @Security    BearerAuth
// @Success     200 {object} matchResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /matches/{matchId}/shortlist [post]
func (h *MatchHandler) Shortlist(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	matchID, ok := paramID(c, "matchId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Match ID")
	}
	var req shortlistRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "Invalid request body")
		}
	}
	shortlisted := true
	if req.Shortlisted != nil {
		shortlisted = *req.Shortlisted
	}
	m, err := h.uc.SetShortlisted(c.Context(), uid, matchID, shortlisted)
	if err != nil {
		return fail(c, "Failed to shortlist", err)
	}
	msg := "Candidate shortlisted"
	if !shortlisted {
		msg = "Candidate removed from shortlist"
	}
	return presenter.JSON(c, http.StatusOK, matchResponse{Message: msg, Match: m})
}

// @Summary  Заметки HR
// @Tags     Подбор
// @Accept   json
// @Produce  json
// @Param    matchId path string       true "ID результата (UUID)"
// @Param    input   body notesRequest true "Заметки"
// @Security BearerAuth
// @Success  200 {object} matchResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /matches/{matchId}/notes [post]
func (h *MatchHandler) Notes(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	matchID, ok := paramID(c, "matchId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid Match ID")
	}
	var req notesRequest
	if err := c.BodyParser(&req); err != nil || req.Notes == nil {
		return presenter.Error(c, http.StatusBadRequest, "notes is required")
	}
	m, err := h.uc.SetNotes(c.Context(), uid, matchID, *req.Notes)
	if err != nil {
		return fail(c, "Failed to add notes", err)
	}
	return presenter.JSON(c, http.StatusOK, matchResponse{Message: "Notes updated", Match: m})
}
