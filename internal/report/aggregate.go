package report

import (
	"fmt"
	"sort"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Aggregate builds the report for period out of already fetched expenses.
// It either returns a complete report or an ErrReportGeneration error,
// never a partial result. The input slice is only read.
func Aggregate(period Period, expenses []*models.Expense) (rep *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			rep, err = nil, fmt.Errorf("%w: %v", ErrReportGeneration, r)
		}
	}()

	if err := validateRecords(period, expenses); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportGeneration, err)
	}

	var (
		total      decimal.Decimal
		byCategory map[string]decimal.Decimal
		byDay      map[string]decimal.Decimal
		top        []ExpenseItem
		all        []ExpenseItem
	)

	// Each branch writes its own variable over the same read-only input.
	var g errgroup.Group
	g.Go(guard(func() { total = Sum(expenses) }))
	g.Go(guard(func() { byCategory = SumByCategory(expenses) }))
	g.Go(guard(func() { byDay = SumByDay(expenses) }))
	g.Go(guard(func() { top = project(TopN(expenses, TopExpensesLimit)) }))
	g.Go(guard(func() { all = project(expenses) }))
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportGeneration, err)
	}

	count := len(expenses)
	return &Report{
		Period: period.info(),
		Summary: Summary{
			TotalAmount:          total,
			TotalCount:           count,
			AverageAmount:        mean(total, count),
			AverageDailySpending: mean(sumValues(byDay), len(byDay)),
			DaysWithExpenses:     len(byDay),
		},
		CategoryBreakdown: byCategory,
		DailyBreakdown:    byDay,
		TopExpenses:       top,
		AllExpenses:       all,
	}, nil
}

// Sum adds up all amounts.
func Sum(expenses []*models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// SumByCategory groups amounts by category name. Categories sharing a
// name fall into one group.
func SumByCategory(expenses []*models.Expense) map[string]decimal.Decimal {
	return sumBy(expenses, func(e *models.Expense) string { return e.CategoryName })
}

// SumByDay groups amounts by calendar date (YYYY-MM-DD).
func SumByDay(expenses []*models.Expense) map[string]decimal.Decimal {
	return sumBy(expenses, func(e *models.Expense) string { return e.Date.Format(dateLayout) })
}

// SumByMonth groups amounts by calendar month (YYYY-MM).
func SumByMonth(expenses []*models.Expense) map[string]decimal.Decimal {
	return sumBy(expenses, func(e *models.Expense) string { return e.Date.Format(yearMonthLayout) })
}

// TopN returns up to n expenses with the largest amounts, largest first.
// Equal amounts are ordered by ascending id.
func TopN(expenses []*models.Expense, n int) []*models.Expense {
	sorted := make([]*models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Amount.Cmp(sorted[j].Amount); c != 0 {
			return c > 0
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sumBy(expenses []*models.Expense, key func(*models.Expense) string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		k := key(e)
		out[k] = out[k].Add(e.Amount)
	}
	return out
}

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

func mean(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}

func project(expenses []*models.Expense) []ExpenseItem {
	items := make([]ExpenseItem, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ExpenseItem{
			ID:          e.ID,
			Amount:      e.Amount,
			Description: e.Description,
			Category:    e.CategoryName,
			Date:        e.Date.Format(dateLayout),
		})
	}
	return items
}

func validateRecords(period Period, expenses []*models.Expense) error {
	for i, e := range expenses {
		switch {
		case e == nil:
			return fmt.Errorf("record %d is nil", i)
		case e.Date.IsZero():
			return fmt.Errorf("expense %d has no date", e.ID)
		case !period.Contains(e.Date):
			return fmt.Errorf("expense %d dated %s is outside %s", e.ID, e.Date.Format(dateLayout), period)
		case e.CategoryName == "":
			return fmt.Errorf("expense %d has no category", e.ID)
		}
	}
	return nil
}

func guard(fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		fn()
		return nil
	}
}
