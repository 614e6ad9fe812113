package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talentmatch/api/http/presenter"
	"github.com/artem13815/talentmatch/pkg/dashboard"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

type DashboardHandler struct {
	uc dashboard.UseCase
}

func NewDashboardHandler(uc dashboard.UseCase) *DashboardHandler { return &DashboardHandler{uc: uc} }

type activityResponse struct {
	Series []dashboard.ActivityPoint `json:"series"`
}

type distributionResponse struct {
	Buckets []dashboard.Bucket `json:"buckets"`
}

// @Summary  Сводка
// @Tags     Дашборд
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} dashboard.Stats
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	st, err := h.uc.Stats(c.Context(), uid)
	if err != nil {
		return fail(c, "Failed to fetch dashboard stats", err)
	}
	return presenter.JSON(c, http.StatusOK, st)
}

// @Summary  Активность за 14 дней
// @Tags     Дашборд
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} activityResponse
// @Router   /dashboard/activity [get]
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	series, err := h.uc.Activity(c.Context(), uid)
	if err != nil {
		return fail(c, "Failed to fetch activity", err)
	}
	return presenter.JSON(c, http.StatusOK, activityResponse{Series: series})
}

// @Summary  Распределение оценок
// @Tags     Дашборд
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} distributionResponse
// @Router   /dashboard/score-distribution [get]
func (h *DashboardHandler) ScoreDistribution(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	buckets, err := h.uc.ScoreDistribution(c.Context(), uid)
	if err != nil {
		return fail(c, "Failed to fetch score distribution", err)
	}
	return presenter.JSON(c, http.StatusOK, distributionResponse{Buckets: buckets})
}
