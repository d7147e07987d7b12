package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий сотрудников и их рабочих окон
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника вместе с рабочими окнами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at", "updated_at").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Employee
	var email sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.Name, &email, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %w", ErrScanRow, err)
	}

	if email.Valid {
		e.Email = &email.String
	}
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	windows, err := r.workingHours(ctx, []int64{e.ID})
	if err != nil {
		return nil, err
	}
	e.WorkingHours = windows[e.ID]

	return &e, nil
}

// List получает всех сотрудников с рабочими окнами, упорядоченных по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at", "updated_at").
		From("employees").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var e domain.Employee
		var email sql.NullString
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&e.ID, &e.Name, &email, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan employee: %w", ErrScanRow, err)
		}
		if email.Valid {
			e.Email = &email.String
		}
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time

		employees = append(employees, &e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return employees, nil
	}

	windows, err := r.workingHours(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		e.WorkingHours = windows[e.ID]
	}

	return employees, nil
}

// workingHours загружает рабочие окна сотрудников
// Окна упорядочены по ID: при нескольких окнах на один день действует первое.
func (r *Repository) workingHours(ctx context.Context, employeeIDs []int64) (map[int64][]domain.WorkingHourWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "employee_id", "weekday", "start_time", "end_time").
		From("working_hours").
		Where(squirrel.Eq{"employee_id": employeeIDs}).
		OrderBy("employee_id ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: workingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: workingHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.WorkingHourWindow, len(employeeIDs))
	for rows.Next() {
		var w domain.WorkingHourWindow
		if err := rows.Scan(&w.ID, &w.EmployeeID, &w.Weekday, &w.StartTime, &w.EndTime); err != nil {
			return nil, fmt.Errorf("%w: workingHours - scan window: %w", ErrScanRow, err)
		}
		result[w.EmployeeID] = append(result[w.EmployeeID], w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: workingHours - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
