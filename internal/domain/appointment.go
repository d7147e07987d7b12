package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Appointment represents a booked service (turno) for a client with an employee
type Appointment struct {
	ID         int64
	Date       time.Time // calendar day, time part is ignored
	StartTime  types.TimeString
	ClientID   int64
	ServiceID  int64
	EmployeeID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew returns true if the appointment has not been persisted yet
func (a *Appointment) IsNew() bool {
	return a.ID == 0
}

// Start returns the start instant of the appointment
func (a *Appointment) Start() (time.Time, error) {
	return a.StartTime.On(a.Date)
}

// Interval returns the effective interval [start, start+duration)
func (a *Appointment) Interval(durationMinutes int) (Interval, error) {
	start, err := a.Start()
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Interval is a half-open time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect
// Intervals touching at an endpoint do not overlap
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Within reports whether the interval lies entirely inside outer
func (i Interval) Within(outer Interval) bool {
	return !i.Start.Before(outer.Start) && !i.End.After(outer.End)
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StartDate  *time.Time // Начало периода включительно (опционально)
	EndDate    *time.Time // Конец периода включительно (опционально)
	EmployeeID *int64     // Фильтр по сотруднику (опционально)
}
