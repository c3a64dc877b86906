package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"expense-tracker/internal/models"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var expenseRowColumns = []string{
	"id", "amount", "description", "date", "category_id", "category_name",
	"user_id", "user_name", "created_at", "updated_at",
}

func TestExpenseRepository_FindByUserNameAndDateBetween(t *testing.T) {
	// Given: a mocked pool returning two rows for alice in January
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(expenseRowColumns).
		AddRow(int64(1), decimal.RequireFromString("10.50"), "lunch", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			int64(3), "Food", int64(9), "alice", created, created).
		AddRow(int64(2), decimal.RequireFromString("4.00"), "bus", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			int64(4), "Transport", int64(9), "alice", created, created)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM expenses e JOIN categories c ON c.id = e.category_id JOIN users u ON u.id = e.user_id " +
			"WHERE u.name = $1 AND e.date >= $2 AND e.date <= $3 ORDER BY e.date, e.id",
	)).
		WithArgs("alice", start, end).
		WillReturnRows(rows)

	repo := NewExpenseRepository(mock, zap.NewNop())

	// When
	expenses, err := repo.FindByUserNameAndDateBetween(context.Background(), "alice", start, end)

	// Then
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Food", expenses[0].CategoryName)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "alice", expenses[1].UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_FindByUserIDAndDateBetween_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.user_id = $1 AND e.date >= $2 AND e.date <= $3")).
		WithArgs(int64(77), start, end).
		WillReturnRows(pgxmock.NewRows(expenseRowColumns))

	repo := NewExpenseRepository(mock, zap.NewNop())
	expenses, err := repo.FindByUserIDAndDateBetween(context.Background(), 77, start, end)

	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_QueryErrorPropagates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM expenses e").WillReturnError(boom)

	repo := NewExpenseRepository(mock, zap.NewNop())
	_, err = repo.List(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestExpenseRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	e := &models.Expense{
		Amount:      decimal.RequireFromString("12.34"),
		Description: "coffee",
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:  3,
		UserID:      9,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO expenses (amount,description,date,category_id,user_id,created_at,updated_at)")).
		WithArgs(e.Amount, e.Description, e.Date, e.CategoryID, e.UserID, e.CreatedAt, e.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(15)))

	repo := NewExpenseRepository(mock, zap.NewNop())
	require.NoError(t, repo.Create(context.Background(), e))

	assert.Equal(t, int64(15), e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_DeleteMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewExpenseRepository(mock, zap.NewNop())
	err = repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
