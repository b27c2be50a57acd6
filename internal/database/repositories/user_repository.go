package repositories

import (
	"context"
	"strings"

	"church-portal/internal/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, role, is_active, last_login, created_at, updated_at`

func scanUser(s scanner) (*database.User, error) {
	var user database.User
	err := s.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Role,
		&user.IsActive, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. Emails are stored lower-cased.
func (r *UserRepository) Create(ctx context.Context, user *database.User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	now := database.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	user.IsActive = true

	query := r.db.Rebind(`
        INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `)
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash,
		user.Name, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt)
	return translateError("create user", err)
}

// GetByEmail returns the active user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*database.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ? AND is_active = ?`)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email)), true))
	if err != nil {
		return nil, translateError("get user by email", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*database.User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError("get user", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := database.Now()
	query := r.db.Rebind(`UPDATE users SET last_login = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return translateError("update last login", err)
	}
	return requireAffected("update last login", res)
}

// UpdatePassword replaces the stored hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := r.db.Rebind(`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, passwordHash, database.Now(), id)
	if err != nil {
		return translateError("update password", err)
	}
	return requireAffected("update password", res)
}

// Count returns the number of users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, translateError("count users", err)
	}
	return n, nil
}
