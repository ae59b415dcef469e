package service

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// SignupInput is the signup payload as received from the HTTP layer.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SigninInput is the signin payload.
type SigninInput struct {
	Email    string
	Password string
}

// SigninResult carries the issued token and a safe user summary.
type SigninResult struct {
	Token string
	User  models.User
}

// ExpenseInput is the create/update payload. Date stays a string until the
// validation table has confirmed it parses.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        string
	Type        string
}

// SummaryFilter optionally windows the dashboard aggregate.
type SummaryFilter struct {
	From time.Time
	To   time.Time
}

type Authorization interface {
	SignUp(ctx context.Context, in SignupInput) error
	SignIn(ctx context.Context, in SigninInput) (SigninResult, error)
	ParseToken(accessToken string) (string, error)
}

// Expenses exposes owner-scoped CRUD over income/expense records.
type Expenses interface {
	List(ctx context.Context, ownerID string) ([]models.Expense, error)
	Create(ctx context.Context, ownerID string, in ExpenseInput) (models.Expense, error)
	Update(ctx context.Context, ownerID, id string, in ExpenseInput) (models.Expense, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Reports exposes the read-only dashboard aggregate.
type Reports interface {
	Summary(ctx context.Context, ownerID string, f SummaryFilter) (models.Summary, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Expenses
	Reports
}

// NewService wires the repository layer into concrete services. The JWT
// signing key comes from configuration and is injected here so no service
// carries an ambient secret.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Expenses:      NewExpenseService(repos.Expenses),
		Reports:       NewReportService(repos.Expenses),
	}
}
