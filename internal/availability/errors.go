package availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга записи не найдена в каталоге
	ErrServiceNotFound = errors.New("availability: service not found")

	// ErrNoScheduleForDay возвращается, когда у сотрудника нет рабочего окна в этот день недели
	ErrNoScheduleForDay = errors.New("availability: employee has no schedule for this day")

	// ErrOutsideWorkingHours возвращается, когда запись выходит за рабочее окно сотрудника
	ErrOutsideWorkingHours = errors.New("availability: appointment is outside working hours")

	// ErrOverlapsExisting возвращается, когда запись пересекается с другой записью сотрудника
	ErrOverlapsExisting = errors.New("availability: appointment overlaps an existing one")

	// ErrInvalidAppointment возвращается, когда время записи невозможно вычислить
	ErrInvalidAppointment = errors.New("availability: invalid appointment")
)

// Reason код причины отказа для клиентов API
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonServiceNotFound     Reason = "ServiceNotFound"
	ReasonNoScheduleForDay    Reason = "NoScheduleForDay"
	ReasonOutsideWorkingHours Reason = "OutsideWorkingHours"
	ReasonOverlapsExisting    Reason = "OverlapsExisting"
)

// ReasonOf возвращает код причины отказа для ошибки валидатора
// Для прочих ошибок возвращает ReasonNone
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, ErrServiceNotFound):
		return ReasonServiceNotFound
	case errors.Is(err, ErrNoScheduleForDay):
		return ReasonNoScheduleForDay
	case errors.Is(err, ErrOutsideWorkingHours):
		return ReasonOutsideWorkingHours
	case errors.Is(err, ErrOverlapsExisting):
		return ReasonOverlapsExisting
	default:
		return ReasonNone
	}
}

// IsRejection проверяет, что ошибка - отказ валидатора, а не внутренняя ошибка
func IsRejection(err error) bool {
	return ReasonOf(err) != ReasonNone
}
