package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"duration_minutes",
	"price",
	"commission_rate",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг и персональных ставок комиссии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу вместе с персональными ставками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	overrides, err := r.commissions(ctx)
	if err != nil {
		return nil, err
	}
	s.Commissions = overrides[s.ID]

	return s, nil
}

// GetAll получает весь каталог услуг с персональными ставками
func (r *Repository) GetAll(ctx context.Context) (domain.ServiceCatalog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan service: %w", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	overrides, err := r.commissions(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		s.Commissions = overrides[s.ID]
	}

	return domain.NewServiceCatalog(services), nil
}

// commissions загружает персональные ставки, сгруппированные по услуге
func (r *Repository) commissions(ctx context.Context) (map[int64][]domain.CommissionOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "service_id", "employee_id", "rate").
		From("service_commissions").
		OrderBy("service_id ASC", "employee_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: commissions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: commissions - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.CommissionOverride)
	for rows.Next() {
		var o domain.CommissionOverride
		if err := rows.Scan(&o.ID, &o.ServiceID, &o.EmployeeID, &o.Rate); err != nil {
			return nil, fmt.Errorf("%w: commissions - scan override: %w", ErrScanRow, err)
		}
		result[o.ServiceID] = append(result[o.ServiceID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: commissions - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var rate decimal.NullDecimal
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.DurationMinutes,
		&s.Price,
		&rate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rate.Valid {
		s.CommissionRate = &rate.Decimal
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
