package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single spending record. CategoryName and UserName are
// denormalized from joins on read and ignored on write.
type Expense struct {
	ID           int64           `db:"id"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	Date         time.Time       `db:"date"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	UserID       int64           `db:"user_id"`
	UserName     string          `db:"user_name"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
