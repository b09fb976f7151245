package main

import (
	"fmt"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/models"
	"depositguard/internal/utils"

	"github.com/spf13/cobra"
)

var tokenFlags struct {
	subject string
	role    string
	ttl     time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin API token signed with JWT_SECRET",
	RunE:  runToken,
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&tokenFlags.subject, "subject", "", "Token subject, usually an email (required)")
	f.StringVar(&tokenFlags.role, "role", models.RoleOperator, "Role: admin or operator")
	f.DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()

	if tokenFlags.role != models.RoleAdmin && tokenFlags.role != models.RoleOperator {
		return fmt.Errorf("unknown role %q", tokenFlags.role)
	}
	if tokenFlags.ttl <= 0 {
		return fmt.Errorf("--ttl must be positive")
	}

	token, err := utils.GenerateAdminToken(tokenFlags.subject, tokenFlags.role, config.GetEnv("JWT_SECRET", ""), tokenFlags.ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
