package service

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockExpenseStore struct {
	mock.Mock
}

func (m *mockExpenseStore) Create(ctx context.Context, e *models.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseStore) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*models.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseStore) Update(ctx context.Context, e *models.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExpenseStore) List(ctx context.Context) ([]*models.Expense, error) {
	return m.expenses(m.Called(ctx))
}

func (m *mockExpenseStore) ListByUserName(ctx context.Context, name string) ([]*models.Expense, error) {
	return m.expenses(m.Called(ctx, name))
}

func (m *mockExpenseStore) FindByUserNameAndDateBetween(ctx context.Context, name string, start, end time.Time) ([]*models.Expense, error) {
	return m.expenses(m.Called(ctx, name, start, end))
}

func (m *mockExpenseStore) FindByUserIDAndDateBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Expense, error) {
	return m.expenses(m.Called(ctx, userID, start, end))
}

func (m *mockExpenseStore) expenses(args mock.Arguments) ([]*models.Expense, error) {
	if e := args.Get(0); e != nil {
		return e.([]*models.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}
