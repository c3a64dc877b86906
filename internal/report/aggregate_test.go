package report

import (
	"encoding/json"
	"testing"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id int64, amount, category, date string) *models.Expense {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}
	return &models.Expense{
		ID:           id,
		Amount:       decimal.RequireFromString(amount),
		Description:  "expense " + category,
		Date:         d,
		CategoryName: category,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func january() Period {
	return Period{Year: 2024, Month: time.January}
}

func TestAggregate_MixedCategoriesAndDays(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "10", "Food", "2024-01-05"),
		expense(2, "20", "Food", "2024-01-05"),
		expense(3, "5", "Transport", "2024-01-06"),
	}

	rep, err := Aggregate(january(), expenses)
	require.NoError(t, err)

	assert.Equal(t, PeriodInfo{YearMonth: "2024-01", StartDate: "2024-01-01", EndDate: "2024-01-31", DaysInMonth: 31}, rep.Period)
	assertDecimal(t, "35", rep.Summary.TotalAmount)
	assert.Equal(t, 3, rep.Summary.TotalCount)
	assert.Equal(t, 2, rep.Summary.DaysWithExpenses)
	assertDecimal(t, "17.5", rep.Summary.AverageDailySpending)
	assert.InDelta(t, 11.6666666, rep.Summary.AverageAmount.InexactFloat64(), 1e-6)

	require.Len(t, rep.CategoryBreakdown, 2)
	assertDecimal(t, "30", rep.CategoryBreakdown["Food"])
	assertDecimal(t, "5", rep.CategoryBreakdown["Transport"])

	require.Len(t, rep.DailyBreakdown, 2)
	assertDecimal(t, "30", rep.DailyBreakdown["2024-01-05"])
	assertDecimal(t, "5", rep.DailyBreakdown["2024-01-06"])

	require.Len(t, rep.TopExpenses, 3)
	assert.Equal(t, []int64{2, 1, 3}, ids(rep.TopExpenses))
	assert.Equal(t, []int64{1, 2, 3}, ids(rep.AllExpenses))
	assert.Equal(t, "Food", rep.AllExpenses[0].Category)
	assert.Equal(t, "2024-01-05", rep.AllExpenses[0].Date)
}

func TestAggregate_EmptyInput(t *testing.T) {
	rep, err := Aggregate(january(), nil)
	require.NoError(t, err)

	assert.True(t, rep.Summary.TotalAmount.IsZero())
	assert.Equal(t, 0, rep.Summary.TotalCount)
	assert.True(t, rep.Summary.AverageAmount.IsZero())
	assert.True(t, rep.Summary.AverageDailySpending.IsZero())
	assert.Equal(t, 0, rep.Summary.DaysWithExpenses)
	assert.NotNil(t, rep.CategoryBreakdown)
	assert.Empty(t, rep.CategoryBreakdown)
	assert.Empty(t, rep.DailyBreakdown)
	assert.NotNil(t, rep.TopExpenses)
	assert.Empty(t, rep.TopExpenses)
	assert.Empty(t, rep.AllExpenses)

	body, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"categoryBreakdown":{}`)
	assert.Contains(t, string(body), `"topExpenses":[]`)
	assert.Contains(t, string(body), `"totalAmount":0`)
}

func TestAggregate_TopExpensesBoundedAndTieBroken(t *testing.T) {
	expenses := []*models.Expense{
		expense(9, "50", "Rent", "2024-01-01"),
		expense(4, "7", "Food", "2024-01-02"),
		expense(8, "7", "Food", "2024-01-03"),
		expense(2, "7", "Food", "2024-01-04"),
		expense(6, "100", "Rent", "2024-01-05"),
		expense(1, "3", "Food", "2024-01-06"),
		expense(3, "-2", "Refund", "2024-01-07"),
	}

	rep, err := Aggregate(january(), expenses)
	require.NoError(t, err)

	require.Len(t, rep.TopExpenses, TopExpensesLimit)
	assert.Equal(t, []int64{6, 9, 2, 4, 8}, ids(rep.TopExpenses))
	for i := 1; i < len(rep.TopExpenses); i++ {
		assert.True(t, rep.TopExpenses[i-1].Amount.GreaterThanOrEqual(rep.TopExpenses[i].Amount))
	}
}

func TestAggregate_TotalsAgreeWithBreakdowns(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "0.1", "A", "2024-01-01"),
		expense(2, "0.2", "B", "2024-01-01"),
		expense(3, "0.3", "A", "2024-01-15"),
		expense(4, "19.99", "C", "2024-01-31"),
		expense(5, "-5.5", "B", "2024-01-31"),
	}

	rep, err := Aggregate(january(), expenses)
	require.NoError(t, err)

	assertDecimal(t, "15.09", rep.Summary.TotalAmount)
	assert.True(t, rep.Summary.TotalAmount.Equal(sumValues(rep.CategoryBreakdown)))
	assert.True(t, rep.Summary.TotalAmount.Equal(sumValues(rep.DailyBreakdown)))
	assert.Equal(t, rep.Summary.TotalCount, len(rep.AllExpenses))
	assert.Equal(t, len(rep.DailyBreakdown), rep.Summary.DaysWithExpenses)
}

func TestAggregate_Deterministic(t *testing.T) {
	expenses := []*models.Expense{
		expense(3, "5", "Transport", "2024-01-06"),
		expense(1, "10", "Food", "2024-01-05"),
		expense(2, "10", "Food", "2024-01-05"),
	}

	first, err := Aggregate(january(), expenses)
	require.NoError(t, err)
	second, err := Aggregate(january(), expenses)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAggregate_MalformedRecords(t *testing.T) {
	outside := expense(1, "10", "Food", "2024-02-01")
	noCategory := expense(2, "10", "", "2024-01-02")
	noDate := &models.Expense{ID: 3, Amount: dec("1"), CategoryName: "Food"}

	for name, input := range map[string][]*models.Expense{
		"nil record":     {nil},
		"outside period": {outside},
		"no category":    {noCategory},
		"no date":        {noDate},
	} {
		t.Run(name, func(t *testing.T) {
			rep, err := Aggregate(january(), input)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, ErrReportGeneration)
		})
	}
}

func TestSumByMonth(t *testing.T) {
	months := SumByMonth([]*models.Expense{
		expense(1, "1.5", "A", "2024-01-31"),
		expense(2, "2", "A", "2024-02-01"),
		expense(3, "3", "B", "2024-02-29"),
	})

	assert.Len(t, months, 2)
	assertDecimal(t, "1.5", months["2024-01"])
	assertDecimal(t, "5", months["2024-02"])
}

func ids(items []ExpenseItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
