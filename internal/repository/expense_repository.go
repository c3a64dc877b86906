package repository

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

var expenseColumns = []string{
	"e.id", "e.amount", "e.description", "e.date",
	"e.category_id", "c.name", "e.user_id", "u.name",
	"e.created_at", "e.updated_at",
}

type ExpenseRepository struct {
	db     DB
	logger *zap.Logger
}

func NewExpenseRepository(db DB, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("amount", "description", "date", "category_id", "user_id", "created_at", "updated_at").
		Values(e.Amount, e.Description, e.Date, e.CategoryID, e.UserID, e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return classify(r.db.QueryRow(ctx, sql, args...).Scan(&e.ID))
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("amount", e.Amount).
		Set("description", e.Description).
		Set("date", e.Date).
		Set("category_id", e.CategoryID).
		Set("user_id", e.UserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return expectAffected(r.db.Exec(ctx, sql, args...))
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return expectAffected(r.db.Exec(ctx, sql, args...))
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	sql, args, err := r.selectExpenses().
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var e models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.Amount, &e.Description, &e.Date,
		&e.CategoryID, &e.CategoryName, &e.UserID, &e.UserName,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}

	return &e, nil
}

// List returns every expense of every user.
func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	return r.query(ctx, r.selectExpenses())
}

func (r *ExpenseRepository) ListByUserName(ctx context.Context, name string) ([]*models.Expense, error) {
	return r.query(ctx, r.selectExpenses().Where(squirrel.Eq{"u.name": name}))
}

// FindByUserNameAndDateBetween returns the expenses owned by the named user
// dated within [start, end], both ends inclusive.
func (r *ExpenseRepository) FindByUserNameAndDateBetween(ctx context.Context, name string, start, end time.Time) ([]*models.Expense, error) {
	return r.query(ctx, r.selectExpenses().
		Where(squirrel.Eq{"u.name": name}).
		Where(squirrel.GtOrEq{"e.date": start}).
		Where(squirrel.LtOrEq{"e.date": end}),
	)
}

// FindByUserIDAndDateBetween is FindByUserNameAndDateBetween keyed by user id.
func (r *ExpenseRepository) FindByUserIDAndDateBetween(ctx context.Context, userID int64, start, end time.Time) ([]*models.Expense, error) {
	return r.query(ctx, r.selectExpenses().
		Where(squirrel.Eq{"e.user_id": userID}).
		Where(squirrel.GtOrEq{"e.date": start}).
		Where(squirrel.LtOrEq{"e.date": end}),
	)
}

func (r *ExpenseRepository) selectExpenses() squirrel.SelectBuilder {
	return squirrel.Select(expenseColumns...).
		From("expenses e").
		Join("categories c ON c.id = e.category_id").
		Join("users u ON u.id = e.user_id").
		OrderBy("e.date", "e.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ExpenseRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Expense, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID, &e.Amount, &e.Description, &e.Date,
			&e.CategoryID, &e.CategoryName, &e.UserID, &e.UserName,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Expenses loaded", zap.Int("count", len(expenses)))
	return expenses, nil
}
