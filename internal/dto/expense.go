package dto

import "github.com/shopspring/decimal"

// ExpenseRequest is the body of expense create and update calls.
// UserID is honoured for admins only.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CategoryID  int64           `json:"categoryId"`
	UserID      *int64          `json:"userId,omitempty"`
}

type ExpenseResponse struct {
	ID          int64            `json:"id"`
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Category    CategoryResponse `json:"category"`
	User        UserRef          `json:"user"`
}

// UserRef is the owner of an expense without any account details.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
