package models

import "time"

// Record kinds for an expense row.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Expense is a single income or expense record owned by one user.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"` // income | expense
	OwnerID     string    `json:"ownerId"`
}

// CategoryTotal aggregates one (category, type) bucket.
type CategoryTotal struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Summary is the dashboard aggregate over an owner's records.
type Summary struct {
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	Balance      float64         `json:"balance"`
	Count        int             `json:"count"`
	Categories   []CategoryTotal `json:"categories"`
}
