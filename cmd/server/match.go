package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/artem13815/talentmatch/pkg/match"
)

var (
	matchOwner string
	matchJob   string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run matching for a job and print the ranking",
	RunE: func(cmd *cobra.Command, _ []string) error {
		owner, err := uuid.Parse(matchOwner)
		if err != nil {
			return fmt.Errorf("--owner: %w", err)
		}
		jobID, err := uuid.Parse(matchJob)
		if err != nil {
			return fmt.Errorf("--job: %w", err)
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

		matches, err := svc.matches.Run(cmd.Context(), owner, jobID)
		if err != nil {
			return err
		}
		return printMatches(cmd.OutOrStdout(), matches)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchOwner, "owner", "", "recruiter id that owns the job")
	matchCmd.Flags().StringVar(&matchJob, "job", "", "job id")
	_ = matchCmd.MarkFlagRequired("owner")
	_ = matchCmd.MarkFlagRequired("job")
}

func printMatches(w io.Writer, matches []match.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCANDIDATE\tFINAL\tSEMANTIC\tSKILLS\tEXPERIENCE\tMISSING")
	for i, m := range matches {
		name := m.CandidateID.String()
		if m.Candidate != nil && m.Candidate.Name != "" {
			name = m.Candidate.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.2f\t%.2f\t%s\n",
			i+1, name, m.FinalScore, m.SemanticScore, m.SkillScore, m.ExperienceScore,
			strings.Join(m.MissingSkills, ", "))
	}
	return tw.Flush()
}
