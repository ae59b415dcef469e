package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (id, name, email, password_hash) VALUES (?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash FROM users WHERE email = ?`
)

// Create inserts a new user. The email column carries a UNIQUE index, so a
// duplicate insert surfaces as a constraint error from the driver.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Name, u.Email, u.PasswordHash); err != nil {
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}
