package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"
)

type ExpenseSQLite struct {
	db *sql.DB
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite { return &ExpenseSQLite{db: db} }

var _ Expenses = (*ExpenseSQLite)(nil)

// SQLite TIMESTAMP format used on write.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertExpenseSQL = `
		INSERT INTO expenses (id, amount, category, description, date, type, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	listByOwnerSQL = `
		SELECT id, amount, category, description, date, type, owner_id
		FROM expenses WHERE owner_id = ? ORDER BY date DESC
	`
	replaceExpenseSQL = `
		UPDATE expenses SET amount = ?, category = ?, description = ?, date = ?, type = ?
		WHERE id = ? AND owner_id = ?
	`
	removeExpenseSQL = `DELETE FROM expenses WHERE id = ? AND owner_id = ?`
)

// ListByOwner returns all records owned by ownerID, newest date first.
func (r *ExpenseSQLite) ListByOwner(ctx context.Context, ownerID string) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list expenses for owner %q: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.Type, &e.OwnerID); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return out, nil
}

// Insert persists a new record. ID, OwnerID and Date are set by the caller.
func (r *ExpenseSQLite) Insert(ctx context.Context, e models.Expense) error {
	_, err := r.db.ExecContext(ctx, insertExpenseSQL,
		e.ID,
		e.Amount,
		e.Category,
		e.Description,
		e.Date.UTC().Format(sqliteTimeLayout),
		e.Type,
		e.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("insert expense %q: %w", e.ID, err)
	}
	return nil
}

// Replace overwrites every mutable field of the record matching (id, owner)
// in a single statement. Returns false when no row matched, which covers both
// "does not exist" and "owned by someone else".
func (r *ExpenseSQLite) Replace(ctx context.Context, ownerID, id string, e models.Expense) (bool, error) {
	res, err := r.db.ExecContext(ctx, replaceExpenseSQL,
		e.Amount,
		e.Category,
		e.Description,
		e.Date.UTC().Format(sqliteTimeLayout),
		e.Type,
		id,
		ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("update expense %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for expense %q: %w", id, err)
	}
	return n > 0, nil
}

// Remove deletes the record matching (id, owner). Returns false when no row matched.
func (r *ExpenseSQLite) Remove(ctx context.Context, ownerID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, removeExpenseSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete expense %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for expense %q: %w", id, err)
	}
	return n > 0, nil
}

// Aggregate sums the owner's records per (category, type) bucket, optionally
// windowed by [from, to] inclusive. Overall totals derive from the buckets.
func (r *ExpenseSQLite) Aggregate(ctx context.Context, ownerID string, from, to time.Time) (models.Summary, error) {
	conds := []string{"owner_id = ?"}
	args := []any{ownerID}

	if !from.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}

	q := `SELECT category, type, SUM(amount), COUNT(*) FROM expenses WHERE ` +
		strings.Join(conds, " AND ") +
		` GROUP BY category, type ORDER BY SUM(amount) DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return models.Summary{}, fmt.Errorf("aggregate expenses for owner %q: %w", ownerID, err)
	}
	defer rows.Close()

	var s models.Summary
	s.Categories = make([]models.CategoryTotal, 0, 8)
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Type, &ct.Total, &ct.Count); err != nil {
			return models.Summary{}, fmt.Errorf("scan aggregate row: %w", err)
		}
		switch ct.Type {
		case models.TypeIncome:
			s.TotalIncome += ct.Total
		case models.TypeExpense:
			s.TotalExpense += ct.Total
		}
		s.Count += ct.Count
		s.Categories = append(s.Categories, ct)
	}
	if err := rows.Err(); err != nil {
		return models.Summary{}, fmt.Errorf("iterate aggregate rows: %w", err)
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}
