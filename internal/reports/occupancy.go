package reports

import (
	"math"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BuildOccupancy считает загрузку каждого сотрудника за период
//
// Рабочее время - сумма длительностей рабочих окон по каждому дню периода
// (0, если окна на этот день недели нет). Занятое время - сумма длительностей
// услуг записей сотрудника в периоде. Процент = занятое / рабочее * 100,
// при нулевом рабочем времени процент равен 0.
func BuildOccupancy(r domain.DateRange, s Snapshot) *OccupancyReport {
	employees := s.sortedEmployees()
	days := r.Days()

	occupied := make(map[int64]int, len(employees))
	for _, item := range s.inRange(r) {
		occupied[item.employee.ID] += item.service.DurationMinutes
	}

	report := &OccupancyReport{Range: r, Employees: make([]EmployeeOccupancy, 0, len(employees))}
	for _, e := range employees {
		working := 0
		for _, d := range days {
			working += e.WorkingMinutesOn(d)
		}

		report.Employees = append(report.Employees, EmployeeOccupancy{
			EmployeeID:      e.ID,
			EmployeeName:    e.Name,
			WorkingMinutes:  working,
			OccupiedMinutes: occupied[e.ID],
			WorkingHours:    float64(working) / 60,
			OccupiedHours:   float64(occupied[e.ID]) / 60,
			Percentage:      percentage(occupied[e.ID], working),
		})
	}

	return report
}

// percentage возвращает occupied/working*100 с округлением до сотых
func percentage(occupied, working int) float64 {
	if working == 0 {
		return 0
	}
	p := float64(occupied) / float64(working) * 100
	return math.Round(p*100) / 100
}
