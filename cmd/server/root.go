package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/talentmatch/pkg/config"
	"github.com/artem13815/talentmatch/pkg/logger"
)

const app = "talentmatch"

var (
	debugFlag bool
	jsonFlag  bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "talentmatch ranks uploaded resumes against job descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "verbose/debug output (overrides LOG_DEBUG)")
	rootCmd.PersistentFlags().BoolVarP(&jsonFlag, "json", "j", false, "json format for logging (overrides LOG_JSON)")

	rootCmd.AddCommand(serveCmd, migrateCmd, matchCmd, processCmd, tokenCmd)
}

// setup loads configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if cmd.Flags().Changed("debug") {
		cfg.LogDebug = debugFlag
	}
	if cmd.Flags().Changed("json") {
		cfg.LogJSON = jsonFlag
	}
	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
