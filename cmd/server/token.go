package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/artem13815/talentmatch/pkg/config"
	"github.com/artem13815/talentmatch/pkg/security/jwt"
)

var tokenUser string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development JWT for a recruiter id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		user := uuid.New()
		if tokenUser != "" {
			var err error
			if user, err = uuid.Parse(tokenUser); err != nil {
				return fmt.Errorf("--user: %w", err)
			}
		}
		cfg := config.Load()
		token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL()).Generate(user)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user:  %s\ntoken: %s\n", user, token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "recruiter id (random when empty)")
}
