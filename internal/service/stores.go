package service

import (
	"context"
	"time"

	"expense-tracker/internal/models"
)

// UserStore is implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}

// CategoryStore is implemented by repository.CategoryRepository.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

// ExpenseStore is implemented by repository.ExpenseRepository.
type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id int64) (*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Expense, error)
	ListByUserName(ctx context.Context, name string) ([]*models.Expense, error)
	ExpenseQuerier
}

// ExpenseQuerier is the read path used by monthly reports.
type ExpenseQuerier interface {
	FindByUserNameAndDateBetween(ctx context.Context, name string, start, end time.Time) ([]*models.Expense, error)
	FindByUserIDAndDateBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Expense, error)
}
