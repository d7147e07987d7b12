package reports

import (
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// resolvedAppointment appointment joined with its service and employee
type resolvedAppointment struct {
	appointment *domain.Appointment
	service     *domain.Service
	employee    *domain.Employee
}

// employeeIndex indexes employees by id
func (s Snapshot) employeeIndex() map[int64]*domain.Employee {
	index := make(map[int64]*domain.Employee, len(s.Employees))
	for _, e := range s.Employees {
		if e != nil {
			index[e.ID] = e
		}
	}
	return index
}

// inRange returns appointments within the range joined with service and employee,
// ordered by date, start time and id
//
// Appointments referencing a missing service or employee are skipped: they are
// treated as orphaned records rather than failures.
func (s Snapshot) inRange(r domain.DateRange) []resolvedAppointment {
	employees := s.employeeIndex()

	result := make([]resolvedAppointment, 0, len(s.Appointments))
	for _, a := range s.Appointments {
		if a == nil || !r.Contains(a.Date) {
			continue
		}

		service, ok := s.Services.Find(a.ServiceID)
		if !ok {
			continue
		}
		employee, ok := employees[a.EmployeeID]
		if !ok {
			continue
		}

		result = append(result, resolvedAppointment{appointment: a, service: service, employee: employee})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].appointment, result[j].appointment
		if da, db := domain.DayOf(a.Date), domain.DayOf(b.Date); !da.Equal(db) {
			return da.Before(db)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsBefore(b.StartTime)
		}
		return a.ID < b.ID
	})

	return result
}

// sortedEmployees returns employees ordered by id
func (s Snapshot) sortedEmployees() []*domain.Employee {
	employees := make([]*domain.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		if e != nil {
			employees = append(employees, e)
		}
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees
}
