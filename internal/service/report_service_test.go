package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestReportService_Summary_PassesWindowThrough(t *testing.T) {
	want := models.Summary{TotalIncome: 100, TotalExpense: 40, Balance: 60, Count: 3}
	var gotFrom, gotTo time.Time

	mock := &mockExpenseRepo{
		AggregateFn: func(ownerID string, from, to time.Time) (models.Summary, error) {
			if ownerID != "owner-a" {
				t.Fatalf("expected owner-a, got %q", ownerID)
			}
			gotFrom, gotTo = from, to
			return want, nil
		},
	}
	svc := NewReportService(mock)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	got, err := svc.Summary(context.Background(), "owner-a", SummaryFilter{From: from, To: to})
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if got.TotalIncome != want.TotalIncome || got.TotalExpense != want.TotalExpense ||
		got.Balance != want.Balance || got.Count != want.Count {
		t.Fatalf("summary: got %+v, want %+v", got, want)
	}
	if gotFrom.Location() != time.UTC {
		t.Errorf("expected from normalized to UTC, got %v", gotFrom.Location())
	}
	if !gotFrom.Equal(from) || !gotTo.Equal(to) {
		t.Errorf("window changed: got [%v, %v]", gotFrom, gotTo)
	}
}

func TestReportService_Summary_RejectsInvertedWindow(t *testing.T) {
	mock := &mockExpenseRepo{
		AggregateFn: func(ownerID string, from, to time.Time) (models.Summary, error) {
			t.Fatal("store should not be touched for an invalid window")
			return models.Summary{}, nil
		},
	}
	svc := NewReportService(mock)

	f := SummaryFilter{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := svc.Summary(context.Background(), "owner-a", f)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReportService_Summary_ZeroWindowMeansUnbounded(t *testing.T) {
	mock := &mockExpenseRepo{
		AggregateFn: func(ownerID string, from, to time.Time) (models.Summary, error) {
			if !from.IsZero() || !to.IsZero() {
				t.Fatalf("expected zero bounds, got [%v, %v]", from, to)
			}
			return models.Summary{}, nil
		},
	}
	svc := NewReportService(mock)

	if _, err := svc.Summary(context.Background(), "owner-a", SummaryFilter{}); err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
}
