package service

import "errors"

// Domain errors shared across services. Handlers translate these into HTTP
// statuses; their text is the client-facing message.
var (
	ErrEmailTaken         = errors.New("Email already exists.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrExpenseNotFound    = errors.New("Expense not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries the first violated rule for a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
