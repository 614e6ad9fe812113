package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/talentmatch/api/http/handlers"
	"github.com/artem13815/talentmatch/api/http/presenter"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Jobs       *handlers.JobHandler
	Candidates *handlers.CandidateHandler
	Matches    *handlers.MatchHandler
	Dashboard  *handlers.DashboardHandler
}

// Options configure the Fiber app.
type Options struct {
	CORSOrigin string
	// BodyLimit caps a request body in bytes; multipart uploads carry several files.
	BodyLimit int
	AccessLog bool
}

// NewApp builds a Fiber app with recover, CORS and optional access logging.
func NewApp(opts Options) *fiber.App {
	cfg := fiber.Config{
		AppName:      "talentmatch",
		ErrorHandler: errorHandler,
	}
	if opts.BodyLimit > 0 {
		cfg.BodyLimit = opts.BodyLimit
	}
	app := fiber.New(cfg)
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	jobs := v1.Group("/jobs", authMW)
	jobs.Post("/", h.Jobs.Create)
	jobs.Get("/", h.Jobs.List)
	jobs.Get("/:jobId", h.Jobs.Get)
	jobs.Put("/:jobId", h.Jobs.Update)
	jobs.Delete("/:jobId", h.Jobs.Delete)

	cands := v1.Group("/candidates", authMW)
	// /process раньше /:jobId
	cands.Post("/process", h.Candidates.Process)
	cands.Post("/:jobId/upload", h.Candidates.Upload)
	cands.Get("/:jobId", h.Candidates.ListByJob)

	matches := v1.Group("/matches", authMW)
	matches.Post("/:jobId/run", h.Matches.Run)
	matches.Get("/:jobId", h.Matches.List)
	matches.Post("/:matchId/shortlist", h.Matches.Shortlist)
	matches.Post("/:matchId/notes", h.Matches.Notes)

	dash := v1.Group("/dashboard", authMW)
	dash.Get("/stats", h.Dashboard.Stats)
	dash.Get("/activity", h.Dashboard.Activity)
	dash.Get("/score-distribution", h.Dashboard.ScoreDistribution)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		return presenter.Error(c, code, fe.Message)
	}
	return presenter.Fail(c, code, "Internal server error", err)
}
