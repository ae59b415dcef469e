package service

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// ReportService computes the dashboard aggregate over an owner's records.
type ReportService struct {
	expenses repository.Expenses
}

func NewReportService(expenses repository.Expenses) *ReportService {
	return &ReportService{expenses: expenses}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares the window and validates its ordering.
func normalizeAndValidateFilter(f SummaryFilter) (time.Time, time.Time, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errInvalidTimeRange
	}
	return from, to, nil
}

func (s *ReportService) Summary(ctx context.Context, ownerID string, f SummaryFilter) (models.Summary, error) {
	from, to, err := normalizeAndValidateFilter(f)
	if err != nil {
		return models.Summary{}, &ValidationError{Field: "from", Message: "'from' must be <= 'to'"}
	}
	return s.expenses.Aggregate(ctx, ownerID, from, to)
}
