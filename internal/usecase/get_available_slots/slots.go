package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateStartTimes перебирает начала записи внутри рабочего окна с шагом step
// Начало попадает в список, только если запись длительностью duration заканчивается не позже конца окна.
func generateStartTimes(window *domain.WorkingHourWindow, duration, step int) ([]types.TimeString, error) {
	openMinutes, err := window.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := window.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	starts := make([]types.TimeString, 0)
	for m := openMinutes; m+duration <= closeMinutes; m += step {
		start, err := types.FromMinutes(m)
		if err != nil {
			return nil, err
		}
		starts = append(starts, start)
	}

	return starts, nil
}

// dropStartedSlots убирает на сегодня начала раньше now + notice
func dropStartedSlots(starts []types.TimeString, date, now time.Time, noticeMinutes int) []types.TimeString {
	if !isSameDay(date, now) {
		return starts
	}

	earliest := now.Hour()*60 + now.Minute() + noticeMinutes

	result := make([]types.TimeString, 0, len(starts))
	for _, start := range starts {
		m, err := start.Minutes()
		if err != nil || m < earliest {
			continue
		}
		result = append(result, start)
	}
	return result
}

// acceptedStarts оставляет начала, которые валидатор принял бы для этого сотрудника
func acceptedStarts(
	starts []types.TimeString,
	date time.Time,
	serviceID int64,
	employee *domain.Employee,
	catalog domain.ServiceCatalog,
	existing []*domain.Appointment,
) []types.TimeString {
	result := make([]types.TimeString, 0, len(starts))
	for _, start := range starts {
		candidate := &domain.Appointment{
			Date:       date,
			StartTime:  start,
			ServiceID:  serviceID,
			EmployeeID: employee.ID,
		}
		if availability.Validate(candidate, employee, catalog, existing, nil) == nil {
			result = append(result, start)
		}
	}
	return result
}
