package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	processOwner string
	processIDs   []string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the parse and embed pipeline for candidates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		owner, err := uuid.Parse(processOwner)
		if err != nil {
			return fmt.Errorf("--owner: %w", err)
		}
		ids, err := parseIDs(processIDs)
		if err != nil {
			return err
		}
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		svc, err := wire(cmd.Context(), cfg, log, true)
		if err != nil {
			return err
		}
		defer svc.Close()

		processed, err := svc.candidates.Process(cmd.Context(), owner, ids)
		if err != nil {
			return err
		}
		log.Info("candidate processing complete", zap.Int("requested", len(ids)), zap.Int("ready", len(processed)))
		for _, c := range processed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%v\n", c.ID, c.Name, c.ParsedSkills)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processOwner, "owner", "", "recruiter id that uploaded the resumes")
	processCmd.Flags().StringSliceVar(&processIDs, "ids", nil, "comma separated candidate ids")
	_ = processCmd.MarkFlagRequired("owner")
	_ = processCmd.MarkFlagRequired("ids")
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("candidate id %q: %w", r, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
