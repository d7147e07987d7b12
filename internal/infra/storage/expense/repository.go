package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий расходов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDateRange получает расходы за период (границы включительно)
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"description",
		"amount",
		"expense_date",
		"category",
		"created_at",
		"updated_at",
	).
		From("expenses").
		Where(squirrel.GtOrEq{"expense_date": domain.DayOf(from)}).
		Where(squirrel.LtOrEq{"expense_date": domain.DayOf(to)}).
		OrderBy("expense_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.Description,
			&e.Amount,
			&e.Date,
			&e.Category,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan expense: %w", ErrScanRow, err)
		}

		e.Date = domain.DayOf(e.Date)
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time

		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %w", ErrScanRow, err)
	}

	return expenses, nil
}
