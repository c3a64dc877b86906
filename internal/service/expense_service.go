package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/report"
	"expense-tracker/internal/repository"
	"expense-tracker/pkg/auth"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type ExpenseService struct {
	expenseRepo  ExpenseStore
	categoryRepo CategoryStore
	userRepo     UserStore
	logger       *zap.Logger
}

func NewExpenseService(expenseRepo ExpenseStore, categoryRepo CategoryStore, userRepo UserStore, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// ListAll returns every expense in the system. Admin only.
func (s *ExpenseService) ListAll(ctx context.Context, caller auth.Caller) ([]dto.ExpenseResponse, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return toExpenseResponses(expenses), nil
}

func (s *ExpenseService) ListMine(ctx context.Context, caller auth.Caller) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByUserName(ctx, caller.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return toExpenseResponses(expenses), nil
}

func (s *ExpenseService) Create(ctx context.Context, caller auth.Caller, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	ownerID := caller.ID
	if req.UserID != nil && *req.UserID != caller.ID {
		if !caller.IsAdmin() {
			return nil, ErrForbidden
		}
		if _, err := s.userRepo.GetByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		ownerID = *req.UserID
	}

	now := time.Now().UTC()
	expense := &models.Expense{
		Amount:      req.Amount,
		Description: sanitizeText(req.Description),
		Date:        date,
		CategoryID:  req.CategoryID,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info("Expense created",
		zap.Int64("expense_id", expense.ID),
		zap.Int64("user_id", ownerID),
		zap.String("amount", expense.Amount.String()),
	)
	return s.reload(ctx, expense.ID)
}

func (s *ExpenseService) Update(ctx context.Context, caller auth.Caller, id int64, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != expense.CategoryID {
		if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	expense.Amount = req.Amount
	expense.Description = sanitizeText(req.Description)
	expense.Date = date
	expense.CategoryID = req.CategoryID
	expense.UpdatedAt = time.Now().UTC()

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrExpenseNotFound
		case errors.Is(err, repository.ErrReference):
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return s.reload(ctx, id)
}

func (s *ExpenseService) Delete(ctx context.Context, caller auth.Caller, id int64) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.logger.Info("Expense deleted", zap.Int64("expense_id", id), zap.Int64("by", caller.ID))
	return nil
}

// TotalByCategory sums all expenses per category name. Admin only.
func (s *ExpenseService) TotalByCategory(ctx context.Context, caller auth.Caller) (map[string]decimal.Decimal, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return report.SumByCategory(expenses), nil
}

// MonthlySummary sums all expenses per YYYY-MM. Admin only.
func (s *ExpenseService) MonthlySummary(ctx context.Context, caller auth.Caller) (map[string]decimal.Decimal, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return report.SumByMonth(expenses), nil
}

func (s *ExpenseService) MyTotalByCategory(ctx context.Context, caller auth.Caller) (map[string]decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListByUserName(ctx, caller.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return report.SumByCategory(expenses), nil
}

func (s *ExpenseService) MyMonthlySummary(ctx context.Context, caller auth.Caller) (map[string]decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListByUserName(ctx, caller.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return report.SumByMonth(expenses), nil
}

// owned loads an expense the caller may modify.
func (s *ExpenseService) owned(ctx context.Context, caller auth.Caller, id int64) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if expense.UserID != caller.ID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return expense, nil
}

func (s *ExpenseService) ensureCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: categoryId is required", ErrInvalidInput)
	}
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	return nil
}

func (s *ExpenseService) reload(ctx context.Context, id int64) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expense: %w", err)
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return d, nil
}

func toExpenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
		Category:    dto.CategoryResponse{ID: e.CategoryID, Name: e.CategoryName},
		User:        dto.UserRef{ID: e.UserID, Name: e.UserName},
	}
}

func toExpenseResponses(expenses []*models.Expense) []dto.ExpenseResponse {
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out
}
