package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	aggregator "github.com/m04kA/SMC-SalonService/internal/reports"
	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
)

const (
	KindCommissions = "commissions"
	KindIncome      = "income"
	KindOccupancy   = "occupancy"
	KindCashFlow    = "cash_flow"
)

// Service сервис финансовых отчетов
// Читает снимок данных за период в одной read-only транзакции и передает его агрегатору.
type Service struct {
	appointmentRepo AppointmentRepository
	employeeRepo    EmployeeRepository
	catalogRepo     CatalogRepository
	expenseRepo     ExpenseRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	maxRangeDays    int
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
// maxRangeDays = 0 снимает ограничение на длину периода
func NewService(
	appointmentRepo AppointmentRepository,
	employeeRepo EmployeeRepository,
	catalogRepo CatalogRepository,
	expenseRepo ExpenseRepository,
	txManager TransactionManager,
	maxRangeDays int,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
		catalogRepo:     catalogRepo,
		expenseRepo:     expenseRepo,
		txManager:       txManager,
		metrics:         nopMetrics{},
		maxRangeDays:    maxRangeDays,
		logger:          logger,
	}
}

// WithMetrics подключает учет построенных отчетов
func (s *Service) WithMetrics(m MetricsRecorder) *Service {
	if m != nil {
		s.metrics = m
	}
	return s
}

// Commissions отчет по комиссиям сотрудников
func (s *Service) Commissions(ctx context.Context, startDate, endDate string) (*models.CommissionReportResponse, error) {
	r, snap, err := s.prepare(ctx, KindCommissions, startDate, endDate, false)
	if err != nil {
		return nil, err
	}
	report := aggregator.BuildCommissions(r, snap)
	s.logger.Info("Commissions: period=%s, employees=%d, total=%s", r, len(report.Employees), report.Total)
	return models.FromCommissionReport(report), nil
}

// Income отчет по выручке
func (s *Service) Income(ctx context.Context, startDate, endDate string) (*models.IncomeReportResponse, error) {
	r, snap, err := s.prepare(ctx, KindIncome, startDate, endDate, false)
	if err != nil {
		return nil, err
	}
	report := aggregator.BuildIncome(r, snap)
	s.logger.Info("Income: period=%s, appointments=%d, total=%s", r, report.AppointmentsCount, report.Total)
	return models.FromIncomeReport(report), nil
}

// Occupancy отчет по загрузке сотрудников
func (s *Service) Occupancy(ctx context.Context, startDate, endDate string) (*models.OccupancyReportResponse, error) {
	r, snap, err := s.prepare(ctx, KindOccupancy, startDate, endDate, false)
	if err != nil {
		return nil, err
	}
	report := aggregator.BuildOccupancy(r, snap)
	s.logger.Info("Occupancy: period=%s, employees=%d", r, len(report.Employees))
	return models.FromOccupancyReport(report), nil
}

// CashFlow отчет о движении денег
func (s *Service) CashFlow(ctx context.Context, startDate, endDate string) (*models.CashFlowReportResponse, error) {
	r, snap, err := s.prepare(ctx, KindCashFlow, startDate, endDate, true)
	if err != nil {
		return nil, err
	}
	report := aggregator.BuildCashFlow(r, snap)
	s.logger.Info("CashFlow: period=%s, income=%s, expenses=%s, net=%s",
		r, report.Income.Total, report.TotalExpenses, report.Net)
	return models.FromCashFlowReport(report), nil
}

// prepare проверяет период и читает снимок данных
func (s *Service) prepare(
	ctx context.Context,
	kind, startDate, endDate string,
	withExpenses bool,
) (domain.DateRange, aggregator.Snapshot, error) {
	r, err := s.dateRange(startDate, endDate)
	if err != nil {
		s.logger.Warn("Report %s: invalid period %q..%q: %v", kind, startDate, endDate, err)
		return domain.DateRange{}, aggregator.Snapshot{}, err
	}

	snap, err := s.snapshot(ctx, r, withExpenses)
	if err != nil {
		s.logger.Error("Report %s: failed to read data for %s: %v", kind, r, err)
		return domain.DateRange{}, aggregator.Snapshot{}, err
	}

	s.metrics.IncReport(kind)
	return r, snap, nil
}

func (s *Service) dateRange(startDate, endDate string) (domain.DateRange, error) {
	if startDate == "" || endDate == "" {
		return domain.DateRange{}, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidDateRange)
	}

	r, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	if s.maxRangeDays > 0 && r.LengthDays() > s.maxRangeDays {
		return domain.DateRange{}, fmt.Errorf("%w: period is longer than %d days", ErrInvalidDateRange, s.maxRangeDays)
	}

	return r, nil
}

func (s *Service) snapshot(ctx context.Context, r domain.DateRange, withExpenses bool) (aggregator.Snapshot, error) {
	var snap aggregator.Snapshot

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		appointments, err := s.appointmentRepo.List(txCtx, domain.AppointmentsFilter{StartDate: &r.Start, EndDate: &r.End})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		catalog, err := s.catalogRepo.GetAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to get service catalog: %v", ErrInternal, err)
		}

		employees, err := s.employeeRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
		}

		snap = aggregator.Snapshot{
			Appointments: appointments,
			Services:     catalog,
			Employees:    employees,
		}

		if withExpenses {
			expenses, err := s.expenseRepo.GetByDateRange(txCtx, r.Start, r.End)
			if err != nil {
				return fmt.Errorf("%w: failed to get expenses: %v", ErrInternal, err)
			}
			snap.Expenses = expenses
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return aggregator.Snapshot{}, err
		}
		return aggregator.Snapshot{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return snap, nil
}
