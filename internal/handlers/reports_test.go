package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/service"
)

func TestSummaryHandler_Success(t *testing.T) {
	rep := &mockReports{summary: models.Summary{
		TotalIncome:  1200,
		TotalExpense: 100,
		Balance:      1100,
		Count:        4,
		Categories: []models.CategoryTotal{
			{Category: "Salary", Type: "income", Total: 1200, Count: 1},
			{Category: "Food", Type: "expense", Total: 80, Count: 2},
			{Category: "Transport", Type: "expense", Total: 20, Count: 1},
		},
	}}
	_, r := newExpenseRouter(&mockExpenses{}, rep)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/expenses/summary", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out models.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Balance != 1100 || out.Count != 4 || len(out.Categories) != 3 {
		t.Fatalf("unexpected summary: %+v", out)
	}
	if rep.lastOwner != "owner-a" {
		t.Fatalf("owner not threaded to service: %q", rep.lastOwner)
	}
}

func TestSummaryHandler_WindowParsing(t *testing.T) {
	rep := &mockReports{}
	_, r := newExpenseRouter(&mockExpenses{}, rep)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/expenses/summary?from=2024-01-01&to=2024-01-31", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !rep.lastFilter.From.Equal(wantFrom) {
		t.Fatalf("from: got %v, want %v", rep.lastFilter.From, wantFrom)
	}
	// date-only 'to' is end-of-day inclusive
	endOfDay := time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)
	if !rep.lastFilter.To.Equal(endOfDay) {
		t.Fatalf("to: got %v, want %v", rep.lastFilter.To, endOfDay)
	}
}

func TestSummaryHandler_BadWindow(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"bad from", "/expenses/summary?from=notadate"},
		{"bad to", "/expenses/summary?to=31/01/2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, r := newExpenseRouter(&mockExpenses{}, &mockReports{})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodGet, tc.url, ""))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestSummaryHandler_InvertedWindowRejectedByService(t *testing.T) {
	rep := &mockReports{err: &service.ValidationError{Field: "from", Message: "'from' must be <= 'to'"}}
	_, r := newExpenseRouter(&mockExpenses{}, rep)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/expenses/summary?from=2024-02-01&to=2024-01-01", ""))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
	}
}
