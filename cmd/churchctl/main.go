// Command churchctl is the operator CLI for admin bootstrap, password
// resets, schema migrations and audit log housekeeping.
package main

import (
	"fmt"
	"os"

	"church-portal/internal/database"
	"church-portal/pkg/config"
	"church-portal/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "churchctl",
		Short:        "Operator tasks for the church portal",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs/server.yaml", "Path to the server config file")

	root.AddCommand(newCreateAdminCmd(), newResetPasswordCmd(), newMigrateCmd(), newAuditCmd())
	return root
}

// env is a bundle of what the subcommands need
type env struct {
	cfg *config.Config
	log *logger.Logger
	db  *database.DB
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func loadEnv(connect bool) (*env, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	e := &env{
		cfg: cfg,
		log: logger.NewLogger(logger.Options{Level: cfg.Logging.Level, Format: "text"}).WithComponent("churchctl"),
	}
	if !connect {
		return e, nil
	}
	e.db, err = database.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return e, nil
}
