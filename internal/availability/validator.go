package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Rejection отказ валидатора с сообщением для пользователя
// Unwrap возвращает один из сентинелов ErrServiceNotFound, ErrNoScheduleForDay,
// ErrOutsideWorkingHours, ErrOverlapsExisting
type Rejection struct {
	Reason  Reason
	Message string

	// Window рабочее окно сотрудника (для OutsideWorkingHours)
	Window *domain.WorkingHourWindow
	// Conflict пересекающаяся запись (для OverlapsExisting)
	Conflict *domain.Appointment

	sentinel error
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%v: %s", r.sentinel, r.Message)
}

func (r *Rejection) Unwrap() error {
	return r.sentinel
}

// Validate проверяет, можно ли принять запись candidate
//
// Порядок проверок:
//  1. услуга записи есть в каталоге
//  2. у сотрудника есть рабочее окно на день недели даты записи
//  3. интервал [начало, начало+длительность) целиком внутри окна
//  4. нет пересечений с другими записями того же сотрудника (кроме excludingID)
//
// Функция чистая: не кеширует и не обращается к хранилищу, поэтому при каждой
// попытке сохранения её нужно вызывать на свежем снимке existing.
func Validate(
	candidate *domain.Appointment,
	employee *domain.Employee,
	services domain.ServiceCatalog,
	existing []*domain.Appointment,
	excludingID *int64,
) error {
	service, ok := services.Find(candidate.ServiceID)
	if !ok {
		return &Rejection{
			Reason:   ReasonServiceNotFound,
			Message:  "Servicio no encontrado.",
			sentinel: ErrServiceNotFound,
		}
	}

	interval, err := candidate.Interval(service.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppointment, err)
	}

	dayName := domain.WeekdayName(candidate.Date)

	window, ok := employee.WindowFor(candidate.Date)
	if !ok {
		return &Rejection{
			Reason:   ReasonNoScheduleForDay,
			Message:  fmt.Sprintf("El empleado no tiene horario de trabajo definido para el día %s.", dayName),
			sentinel: ErrNoScheduleForDay,
		}
	}

	if !fitsWindow(interval, window, candidate) {
		return &Rejection{
			Reason: ReasonOutsideWorkingHours,
			Message: fmt.Sprintf("El turno está fuera del horario de trabajo del empleado (%s - %s) para el día %s.",
				window.StartTime, window.EndTime, dayName),
			Window:   window,
			sentinel: ErrOutsideWorkingHours,
		}
	}

	if conflict := findOverlap(candidate, interval, services, existing, excludingID); conflict != nil {
		return &Rejection{
			Reason: ReasonOverlapsExisting,
			Message: fmt.Sprintf("El empleado ya tiene un turno programado que se superpone con este horario (%s %s).",
				conflict.Date.Format(domain.DateFormat), conflict.StartTime),
			Conflict: conflict,
			sentinel: ErrOverlapsExisting,
		}
	}

	return nil
}

// fitsWindow проверяет, что интервал записи лежит внутри рабочего окна на ту же дату
// Некорректное окно (не парсится) трактуется как отсутствие рабочего времени
func fitsWindow(interval domain.Interval, window *domain.WorkingHourWindow, candidate *domain.Appointment) bool {
	windowStart, err := window.StartTime.On(candidate.Date)
	if err != nil {
		return false
	}
	windowEnd, err := window.EndTime.On(candidate.Date)
	if err != nil {
		return false
	}
	return interval.Within(domain.Interval{Start: windowStart, End: windowEnd})
}

// findOverlap возвращает первую запись того же сотрудника, пересекающуюся с интервалом
//
// Пересечение есть только при строгих неравенствах:
// candidateStart < otherEnd && candidateEnd > otherStart
// Записи, которые лишь касаются границей (10:00-11:00 и 11:00-12:00), не конфликтуют.
// Записи с неизвестной услугой пропускаются: их длительность невозможно вычислить.
func findOverlap(
	candidate *domain.Appointment,
	interval domain.Interval,
	services domain.ServiceCatalog,
	existing []*domain.Appointment,
	excludingID *int64,
) *domain.Appointment {
	for _, other := range existing {
		if other == nil || other.EmployeeID != candidate.EmployeeID {
			continue
		}

		// Редактируемая запись не конфликтует сама с собой
		if excludingID != nil && other.ID == *excludingID {
			continue
		}

		otherService, ok := services.Find(other.ServiceID)
		if !ok {
			continue
		}

		otherInterval, err := other.Interval(otherService.DurationMinutes)
		if err != nil {
			continue
		}

		if interval.Overlaps(otherInterval) {
			return other
		}
	}

	return nil
}
