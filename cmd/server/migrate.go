package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		if err := postgres.Migrate(cmd.Context(), cfg.DatabaseURL); err != nil {
			return err
		}
		version, err := postgres.MigrationVersion(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		log.Info("migrations applied", zap.Int64("version", version))
		return nil
	},
}
