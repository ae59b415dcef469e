package service

import (
	"context"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
)

// ExpenseService performs owner-scoped CRUD over income/expense records.
// Ownership is enforced by the repository's (id, owner) filters; this layer
// never sees another user's rows.
type ExpenseService struct {
	expenses repository.Expenses
}

func NewExpenseService(expenses repository.Expenses) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) List(ctx context.Context, ownerID string) ([]models.Expense, error) {
	return s.expenses.ListByOwner(ctx, ownerID)
}

// Create validates the payload before any store access, then persists a new
// record bound to ownerID.
func (s *ExpenseService) Create(ctx context.Context, ownerID string, in ExpenseInput) (models.Expense, error) {
	e, verr := buildExpense(ownerID, in)
	if verr != nil {
		return models.Expense{}, verr
	}
	e.ID = uuid.NewString()
	if err := s.expenses.Insert(ctx, e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Update replaces every mutable field of the owner's record in one atomic
// statement. A miss means the record is absent or foreign-owned; the caller
// can't tell which.
func (s *ExpenseService) Update(ctx context.Context, ownerID, id string, in ExpenseInput) (models.Expense, error) {
	e, verr := buildExpense(ownerID, in)
	if verr != nil {
		return models.Expense{}, verr
	}
	e.ID = id
	matched, err := s.expenses.Replace(ctx, ownerID, id, e)
	if err != nil {
		return models.Expense{}, err
	}
	if !matched {
		return models.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

// Delete removes the owner's record; same indistinguishability rule as Update.
func (s *ExpenseService) Delete(ctx context.Context, ownerID, id string) error {
	matched, err := s.expenses.Remove(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrExpenseNotFound
	}
	return nil
}

// buildExpense runs the validation table and converts the input into a
// domain record (without an ID).
func buildExpense(ownerID string, in ExpenseInput) (models.Expense, *ValidationError) {
	if verr := validateExpense(in); verr != nil {
		return models.Expense{}, verr
	}
	date, err := parseDate(in.Date)
	if err != nil {
		// validateExpense already vetted the format; keep a guard anyway.
		return models.Expense{}, &ValidationError{Field: "date", Message: "Invalid date"}
	}
	return models.Expense{
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
		Type:        in.Type,
		OwnerID:     ownerID,
	}, nil
}
