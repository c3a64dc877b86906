package report

import "github.com/shopspring/decimal"

// TopExpensesLimit bounds Report.TopExpenses.
const TopExpensesLimit = 5

type PeriodInfo struct {
	YearMonth   string `json:"yearMonth"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	DaysInMonth int    `json:"daysInMonth"`
}

type Summary struct {
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalCount           int             `json:"totalCount"`
	AverageAmount        decimal.Decimal `json:"averageAmount"`
	AverageDailySpending decimal.Decimal `json:"averageDailySpending"`
	DaysWithExpenses     int             `json:"daysWithExpenses"`
}

// ExpenseItem is the flattened view of an expense exposed in reports.
type ExpenseItem struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// Report is the monthly spending report. It holds copies only and stays
// valid after the underlying records change.
type Report struct {
	Period            PeriodInfo                 `json:"period"`
	Summary           Summary                    `json:"summary"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"`
	DailyBreakdown    map[string]decimal.Decimal `json:"dailyBreakdown"`
	TopExpenses       []ExpenseItem              `json:"topExpenses"`
	AllExpenses       []ExpenseItem              `json:"allExpenses"`
}
