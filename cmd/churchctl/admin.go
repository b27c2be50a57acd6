package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"church-portal/internal/auth"
	"church-portal/internal/database"
	"church-portal/internal/database/repositories"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	defaultAdminEmail    = "admin@casadeprovision.es"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Administrator"
)

type adminInput struct {
	email    string
	password string
	name     string
	printSQL bool
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func newCreateAdminCmd() *cobra.Command {
	in := &adminInput{}
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first admin user",
		Long: `Create an admin user from ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME,
or the matching flags. With --print-sql the INSERT statement is printed
instead of executed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd, in)
		},
	}
	cmd.Flags().StringVar(&in.email, "email", envOr("ADMIN_EMAIL", defaultAdminEmail), "Admin email")
	cmd.Flags().StringVar(&in.password, "password", envOr("ADMIN_PASSWORD", defaultAdminPassword), "Admin password")
	cmd.Flags().StringVar(&in.name, "name", envOr("ADMIN_NAME", defaultAdminName), "Admin display name")
	cmd.Flags().BoolVar(&in.printSQL, "print-sql", false, "Print the SQL instead of writing to the database")
	return cmd
}

func runCreateAdmin(cmd *cobra.Command, in *adminInput) error {
	e, err := loadEnv(!in.printSQL)
	if err != nil {
		return err
	}
	defer e.Close()

	if in.password == defaultAdminPassword {
		e.log.Warning("Using the default admin password; change it after the first login")
	}

	hash, err := auth.NewPasswordHasher(e.cfg.Security.BcryptCost).Hash(in.password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &database.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(in.email)),
		PasswordHash: hash,
		Name:         in.name,
		Role:         string(auth.RoleAdmin),
	}

	if in.printSQL {
		return writeAdminSQL(cmd.OutOrStdout(), user)
	}

	if e.cfg.Database.AutoMigrate {
		if err := database.RunMigrations(e.db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	err = repositories.NewUserRepository(e.db).Create(cmd.Context(), user)
	if errors.Is(err, database.ErrDuplicate) {
		return fmt.Errorf("a user with email %s already exists", user.Email)
	}
	if err != nil {
		return err
	}

	e.log.AuditLogger("admin_created", user.ID, "user", user.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "Admin user %s created\n", user.Email)
	return nil
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func writeAdminSQL(w io.Writer, u *database.User) error {
	_, err := fmt.Fprintf(w,
		"INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, updated_at)\n"+
			"VALUES (%s, %s, %s, %s, %s, TRUE, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);\n",
		sqlQuote(u.ID), sqlQuote(u.Email), sqlQuote(u.PasswordHash), sqlQuote(u.Name), sqlQuote(u.Role))
	return err
}
