package service

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fintrack/internal/models"
)

// rule is one row of a payload's validation table: the field it guards, the
// predicate that must hold, and the message reported when it does not.
type rule struct {
	field   string
	ok      bool
	message string
}

// firstViolation walks the table in order and returns the first failed rule,
// so clients always see a single, deterministic message.
func firstViolation(rules []rule) *ValidationError {
	for _, r := range rules {
		if !r.ok {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}

const minPasswordLen = 6

func validateSignup(in SignupInput) *ValidationError {
	return firstViolation([]rule{
		{"name", strings.TrimSpace(in.Name) != "", "Name is required"},
		{"email", validEmail(in.Email), "Invalid email"},
		{"password", len(in.Password) >= minPasswordLen, "Password must be at least 6 characters"},
		{"confirmPassword", in.Password == in.ConfirmPassword, "Passwords do not match"},
	})
}

func validateSignin(in SigninInput) *ValidationError {
	return firstViolation([]rule{
		{"email", validEmail(in.Email), "Invalid email"},
		{"password", in.Password != "", "Password is required"},
	})
}

func validateExpense(in ExpenseInput) *ValidationError {
	return firstViolation([]rule{
		{"amount", in.Amount > 0, "Amount must be positive"},
		{"category", strings.TrimSpace(in.Category) != "", "Category is required"},
		{"description", strings.TrimSpace(in.Description) != "", "Description is required"},
		{"date", in.Date != "", "Date is required"},
		{"date", parseableDate(in.Date), "Invalid date"},
		{"type", in.Type == models.TypeIncome || in.Type == models.TypeExpense, "Type is required"},
	})
}

// validEmail accepts a bare RFC 5322 address (no display name).
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// parseDate accepts RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD',
// normalizing to UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'", s)
}

func parseableDate(s string) bool {
	if s == "" {
		return true // emptiness is reported by the preceding rule
	}
	_, err := parseDate(s)
	return err == nil
}
