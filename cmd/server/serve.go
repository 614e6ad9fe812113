package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "github.com/artem13815/talentmatch/api/http"
	"github.com/artem13815/talentmatch/api/http/handlers"
	_ "github.com/artem13815/talentmatch/docs"
	"github.com/artem13815/talentmatch/pkg/candidate"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

// Загрузка может содержать несколько файлов по MAX_UPLOAD_BYTES.
const maxFilesPerUpload = 10

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := wire(ctx, cfg, log, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		if cfg.SweepSchedule != "" {
			sweeper, err := candidate.NewSweeper(svc.candidates, cfg.SweepSchedule, log)
			if err != nil {
				return fmt.Errorf("PIPELINE_SWEEP_SCHEDULE: %w", err)
			}
			sweeper.Start()
			defer sweeper.Stop()
		}

		app := httpapi.NewApp(httpapi.Options{
			CORSOrigin: cfg.CORSOrigin,
			BodyLimit:  int(cfg.MaxUploadBytes) * maxFilesPerUpload,
			AccessLog:  true,
		})
		httpapi.Register(app, httpapi.Handlers{
			Health:     handlers.NewHealthHandler(svc.readiness),
			Jobs:       handlers.NewJobHandler(svc.jobs),
			Candidates: handlers.NewCandidateHandler(svc.candidates, cfg.MaxUploadBytes),
			Matches:    handlers.NewMatchHandler(svc.matches),
			Dashboard:  handlers.NewDashboardHandler(svc.dashboard),
		}, jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

		// Swagger UI
		app.Get("/swagger/*", swagger.HandlerDefault)

		errCh := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening", zap.String("port", cfg.Port))
			errCh <- app.Listen(":" + cfg.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server stopped: %w", err)
		case <-ctx.Done():
		}
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}
