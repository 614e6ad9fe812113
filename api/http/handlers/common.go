package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/talentmatch/api/http/presenter"
	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/job"
	"github.com/artem13815/talentmatch/pkg/match"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "Unauthorized")
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// fail maps domain errors onto HTTP statuses; message describes the failed action.
func fail(c *fiber.Ctx, message string, err error) error {
	var jobInvalid job.ErrValidation
	var candidateInvalid candidate.ErrValidation
	switch {
	case errors.As(err, &jobInvalid), errors.As(err, &candidateInvalid):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, candidate.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, match.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Match not found")
	}
	return presenter.Fail(c, http.StatusInternalServerError, message, err)
}
