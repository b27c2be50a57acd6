package main

import (
	"fmt"
	"time"

	"church-portal/internal/database/repositories"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit log housekeeping",
	}

	var olderThan time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit log entries older than a given age",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			defer e.Close()

			n, err := repositories.NewAuditLogRepository(e.db).DeleteOldAuditLogs(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			e.log.Info("Pruned %d audit log entries", n)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)
			return nil
		},
	}
	prune.Flags().DurationVar(&olderThan, "older-than", 365*24*time.Hour, "Delete entries older than this")

	cmd.AddCommand(prune)
	return cmd
}
