package save_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	notificationModels "github.com/m04kA/SMC-SalonService/internal/service/notifications/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case сохранения записи (создание и изменение) с проверкой доступности
type UseCase struct {
	appointmentRepo AppointmentRepository
	employeeRepo    EmployeeRepository
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	notifier        Notifier
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	employeeRepo EmployeeRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         nopMetrics{},
		logger:          logger,
	}
}

// WithMetrics подключает учет результатов проверки
func (uc *UseCase) WithMetrics(m MetricsRecorder) *UseCase {
	if m != nil {
		uc.metrics = m
	}
	return uc
}

// snapshot данные, на которых проверяется запись
type snapshot struct {
	employee *domain.Employee
	client   *domain.Client
	catalog  domain.ServiceCatalog
	existing []*domain.Appointment
}

// Execute сохраняет запись, если она проходит проверку доступности
//
// Проверка и сохранение выполняются в одной сериализуемой транзакции, записи
// сотрудника читаются с блокировкой. Поэтому две параллельные записи к одному
// сотруднику не могут обе пройти проверку на пересечение.
// Отказ валидатора возвращается как *availability.Rejection.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SaveAppointment: id=%v, employee=%d, client=%d, service=%d, date=%s, time=%s",
		idString(req.ID), req.EmployeeID, req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	var (
		saved *domain.Appointment
		snap  *snapshot
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.ID != nil {
			if _, err := uc.appointmentRepo.GetByID(txCtx, *req.ID); err != nil {
				if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
					uc.logger.Warn("SaveAppointment: appointment id=%d not found", *req.ID)
					return ErrAppointmentNotFound
				}
				uc.logger.Error("SaveAppointment: failed to get appointment id=%d: %v", *req.ID, err)
				return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
			}
		}

		var err error
		snap, err = uc.load(txCtx, req)
		if err != nil {
			return err
		}

		candidate := toDomain(req)
		if err := uc.validate(candidate, snap, req.ID); err != nil {
			return err
		}

		if req.ID == nil {
			saved, err = uc.appointmentRepo.Create(txCtx, candidate)
		} else {
			saved, err = uc.appointmentRepo.Update(txCtx, candidate)
		}
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("SaveAppointment: failed to persist appointment: %v", err)
			return fmt.Errorf("%w: failed to persist appointment: %w", ErrInternal, err)
		}

		return nil
	})
	uc.recordOutcome(err)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveAppointment: successfully saved appointment id=%d", saved.ID)

	service, _ := snap.catalog.Find(saved.ServiceID)
	uc.notify(ctx, saved, snap, service)

	return toResponse(saved, snap, service), nil
}

// Check проверяет запись без сохранения
// Отказ валидатора не является ошибкой: он возвращается в CheckResult.
func (uc *UseCase) Check(ctx context.Context, req *Request) (*CheckResult, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	snap, err := uc.load(ctx, req)
	if err != nil {
		return nil, err
	}

	err = uc.validate(toDomain(req), snap, req.ID)
	uc.recordOutcome(err)
	if err == nil {
		return &CheckResult{Available: true}, nil
	}

	var rejection *availability.Rejection
	if errors.As(err, &rejection) {
		return &CheckResult{Available: false, Reason: rejection.Reason, Message: rejection.Message}, nil
	}

	return nil, err
}

// load читает сотрудника, клиента, каталог и записи сотрудника вокруг даты
// Соседние дни нужны, чтобы учесть записи, переходящие через полночь.
func (uc *UseCase) load(ctx context.Context, req *Request) (*snapshot, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("SaveAppointment: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("SaveAppointment: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %w", ErrInternal, err)
	}

	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("SaveAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("SaveAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
	}

	catalog, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("SaveAppointment: failed to get service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get service catalog: %w", ErrInternal, err)
	}

	day := domain.DayOf(req.Date)
	existing, err := uc.appointmentRepo.GetByEmployeeForUpdate(ctx, req.EmployeeID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("SaveAppointment: failed to get appointments of employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
	}

	return &snapshot{
		employee: employee,
		client:   client,
		catalog:  catalog,
		existing: existing,
	}, nil
}

// validate запускает валидатор доступности
func (uc *UseCase) validate(candidate *domain.Appointment, snap *snapshot, excludingID *int64) error {
	err := availability.Validate(candidate, snap.employee, snap.catalog, snap.existing, excludingID)
	if err == nil {
		return nil
	}

	if reason := availability.ReasonOf(err); reason != availability.ReasonNone {
		uc.logger.Warn("SaveAppointment: rejected (%s): %v", reason, err)
		return err
	}

	if errors.Is(err, availability.ErrInvalidAppointment) {
		uc.logger.Warn("SaveAppointment: invalid appointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Error("SaveAppointment: validator failed: %v", err)
	return fmt.Errorf("%w: validator failed: %v", ErrInternal, err)
}

// recordOutcome учитывает итог проверки в метриках один раз на запрос,
// после всех повторов сериализуемой транзакции
func (uc *UseCase) recordOutcome(err error) {
	if err == nil {
		uc.metrics.IncAppointmentValidation(resultAccepted)
		return
	}
	if reason := availability.ReasonOf(err); reason != availability.ReasonNone {
		uc.metrics.IncAppointmentValidation(string(reason))
	}
}

// notify уведомляет сотрудника; ошибка только логируется
func (uc *UseCase) notify(ctx context.Context, a *domain.Appointment, snap *snapshot, service *domain.Service) {
	if uc.notifier == nil {
		return
	}

	serviceName := ""
	if service != nil {
		serviceName = service.Name
	}

	err := uc.notifier.NotifyAssigned(ctx, notificationModels.AppointmentAssigned{
		Employee:    snap.employee,
		ClientName:  snap.client.Name,
		ServiceName: serviceName,
		Date:        a.Date,
		StartTime:   a.StartTime.String(),
	})
	if err != nil {
		uc.logger.Warn("SaveAppointment: failed to notify employee id=%d: %v", snap.employee.ID, err)
	}
}

func toDomain(req *Request) *domain.Appointment {
	return &domain.Appointment{
		ID:         ptr.Deref(req.ID, 0),
		Date:       domain.DayOf(req.Date),
		StartTime:  req.StartTime,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
	}
}

func toResponse(a *domain.Appointment, snap *snapshot, service *domain.Service) *Response {
	resp := &Response{
		ID:           a.ID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		ClientID:     a.ClientID,
		ServiceID:    a.ServiceID,
		EmployeeID:   a.EmployeeID,
		ClientName:   snap.client.Name,
		EmployeeName: snap.employee.Name,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	if service != nil {
		resp.ServiceName = service.Name
		resp.DurationMinutes = service.DurationMinutes
		resp.Price = service.Price
		if interval, err := a.Interval(service.DurationMinutes); err == nil {
			resp.EndTime = types.NewTimeString(interval.End)
		}
	}

	return resp
}

func idString(id *int64) string {
	if id == nil {
		return "new"
	}
	return fmt.Sprintf("%d", *id)
}
