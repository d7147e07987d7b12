package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// WorkingHourWindow a weekday-scoped start/end pair when an employee is available
type WorkingHourWindow struct {
	ID         int64
	EmployeeID int64
	Weekday    string // Spanish weekday name, e.g. "Lunes"
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// DurationMinutes returns the window length; malformed or inverted windows count as 0
func (w *WorkingHourWindow) DurationMinutes() int {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := w.EndTime.Minutes()
	if err != nil || end <= start {
		return 0
	}
	return end - start
}

// Employee represents a salon employee with a weekly schedule
type Employee struct {
	ID           int64
	Name         string
	Email        *string
	WorkingHours []WorkingHourWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WindowFor returns the working-hour window for the date's weekday
// If several windows share a weekday the first one wins
func (e *Employee) WindowFor(date time.Time) (*WorkingHourWindow, bool) {
	if e == nil {
		return nil, false
	}
	day := date.Weekday()
	for i := range e.WorkingHours {
		if SameWeekday(e.WorkingHours[i].Weekday, day) {
			return &e.WorkingHours[i], true
		}
	}
	return nil, false
}

// WorkingMinutesOn returns the scheduled minutes for a date (0 when no window)
func (e *Employee) WorkingMinutesOn(date time.Time) int {
	window, ok := e.WindowFor(date)
	if !ok {
		return 0
	}
	return window.DurationMinutes()
}

// HasEmail returns true if the employee can receive e-mail notifications
func (e *Employee) HasEmail() bool {
	return e.Email != nil && *e.Email != ""
}
