package repository

import (
	"context"
	"database/sql"
	"time"

	"fintrack/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Expenses interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Expense, error)
	Insert(ctx context.Context, e models.Expense) error
	// Replace and Remove report whether any row matched the (id, owner) filter.
	Replace(ctx context.Context, ownerID, id string, e models.Expense) (bool, error)
	Remove(ctx context.Context, ownerID, id string) (bool, error)
	Aggregate(ctx context.Context, ownerID string, from, to time.Time) (models.Summary, error)
}

type Repository struct {
	Users    Users
	Expenses Expenses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Expenses: NewExpenseSQLite(db),
	}
}
