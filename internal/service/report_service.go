package service

import (
	"context"
	"fmt"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/report"
	"expense-tracker/pkg/auth"

	"go.uber.org/zap"
)

// ReportService builds monthly spending reports. It validates the request,
// fetches the expenses in scope and hands them to the aggregation engine.
type ReportService struct {
	resolver *report.Resolver
	expenses ExpenseQuerier
	users    UserStore
	logger   *zap.Logger
}

func NewReportService(expenses ExpenseQuerier, users UserStore, now func() time.Time, logger *zap.Logger) *ReportService {
	return &ReportService{
		resolver: report.NewResolver(now),
		expenses: expenses,
		users:    users,
		logger:   logger,
	}
}

// GenerateMonthlyReport never queries the store for a request that fails
// validation. Store failures are wrapped in report.ErrStore, aggregation
// faults in report.ErrReportGeneration.
func (s *ReportService) GenerateMonthlyReport(ctx context.Context, caller auth.Caller, req report.Request) (*report.Report, error) {
	period, scope, err := s.resolver.Resolve(caller, req)
	if err != nil {
		return nil, err
	}

	expenses, err := s.fetch(ctx, period, scope)
	if err != nil {
		s.logger.Error("Failed to load expenses for report",
			zap.String("period", period.String()),
			zap.Stringer("scope", scope),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", report.ErrStore, err)
	}

	rep, err := report.Aggregate(period, expenses)
	if err != nil {
		s.logger.Error("Failed to aggregate report",
			zap.String("period", period.String()),
			zap.Stringer("scope", scope),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Monthly report generated",
		zap.String("period", period.String()),
		zap.Stringer("scope", scope),
		zap.Int64("requested_by", caller.ID),
		zap.Int("expenses", rep.Summary.TotalCount),
	)
	return rep, nil
}

// AvailableUsers lists every account a report can be generated for.
func (s *ReportService) AvailableUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrStore, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func (s *ReportService) fetch(ctx context.Context, period report.Period, scope report.Scope) ([]*models.Expense, error) {
	if scope.Kind == report.ScopeUser {
		return s.expenses.FindByUserIDAndDateBetween(ctx, scope.UserID, period.Start(), period.End())
	}
	return s.expenses.FindByUserNameAndDateBetween(ctx, scope.Username, period.Start(), period.End())
}
