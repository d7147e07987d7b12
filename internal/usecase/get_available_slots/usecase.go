package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case для получения свободного времени сотрудника
type UseCase struct {
	appointmentRepo  AppointmentRepository
	employeeRepo     EmployeeRepository
	catalogRepo      CatalogRepository
	timeProvider     TimeProvider
	stepMinutes      int
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// stepMinutes <= 0 заменяется значением по умолчанию
func NewUseCase(
	appointmentRepo AppointmentRepository,
	employeeRepo EmployeeRepository,
	catalogRepo CatalogRepository,
	stepMinutes int,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		employeeRepo:     employeeRepo,
		catalogRepo:      catalogRepo,
		timeProvider:     &RealTimeProvider{},
		stepMinutes:      stepMinutes,
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DayOf(req.Date)
	now := uc.timeProvider.Now()

	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	uc.logger.Info("GetAvailableSlots: employee=%d, service=%d, date=%s",
		req.EmployeeID, req.ServiceID, date.Format(domain.DateFormat))

	// 2. Получаем сотрудника
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 3. Получаем каталог и услугу
	catalog, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get service catalog: %v", ErrInternal, err)
	}

	service, ok := catalog.Find(req.ServiceID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	resp := &Response{
		Date:            date,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 4. Рабочее окно на день недели
	window, ok := employee.WindowFor(date)
	if !ok {
		uc.logger.Info("GetAvailableSlots: employee=%d does not work on %s", req.EmployeeID, domain.WeekdayName(date))
		return resp, nil
	}

	// 5. Генерируем возможные начала
	starts, err := generateStartTimes(window, service.DurationMinutes, uc.stepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate start times: %v", err)
		return nil, fmt.Errorf("%w: failed to generate start times: %v", ErrInternal, err)
	}
	starts = dropStartedSlots(starts, date, now, uc.minNoticeMinutes)

	// 6. Записи сотрудника вокруг даты (соседние дни для записей через полночь)
	from, to := date.AddDate(0, 0, -1), date.AddDate(0, 0, 1)
	existing, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StartDate:  &from,
		EndDate:    &to,
		EmployeeID: &req.EmployeeID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Оставляем начала, которые примет валидатор
	resp.Slots = acceptedStarts(starts, date, req.ServiceID, employee, catalog, existing)

	uc.logger.Info("GetAvailableSlots: %d free start times for employee=%d, service=%d, date=%s",
		len(resp.Slots), req.EmployeeID, req.ServiceID, date.Format(domain.DateFormat))

	return resp, nil
}
