package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"church-portal/internal/auth"
	"church-portal/internal/database"
	"church-portal/internal/database/repositories"

	"github.com/spf13/cobra"
)

func newResetPasswordCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			defer e.Close()

			user, err := resetPassword(cmd.Context(), repositories.NewUserRepository(e.db),
				auth.NewPasswordHasher(e.cfg.Security.BcryptCost), email, password)
			if err != nil {
				return err
			}

			e.log.AuditLogger("password_reset", user.ID, "user", user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Password updated for %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email of the user")
	cmd.Flags().StringVar(&password, "password", envOr("RESET_PASSWORD", ""), "New password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func resetPassword(ctx context.Context, users *repositories.UserRepository, hasher *auth.PasswordHasher, email, password string) (*database.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := users.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	if err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	return user, nil
}
