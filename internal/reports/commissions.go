package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/commission"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BuildCommissions считает комиссии сотрудников за период
// Сотрудники без записей в периоде в отчет не попадают.
// Сумма Total каждого сотрудника равна сумме его строк, общий Total - сумме по сотрудникам.
func BuildCommissions(r domain.DateRange, s Snapshot) *CommissionReport {
	byEmployee := make(map[int64]*EmployeeCommission)
	report := &CommissionReport{Range: r, Employees: []EmployeeCommission{}, Total: decimal.Zero}

	for _, item := range s.inRange(r) {
		a, service, employee := item.appointment, item.service, item.employee

		amount, rate := commission.Amount(service, employee.ID)

		bucket, ok := byEmployee[employee.ID]
		if !ok {
			bucket = &EmployeeCommission{
				EmployeeID:   employee.ID,
				EmployeeName: employee.Name,
				Total:        decimal.Zero,
			}
			byEmployee[employee.ID] = bucket
		}

		bucket.Total = bucket.Total.Add(amount)
		bucket.Lines = append(bucket.Lines, CommissionLine{
			AppointmentID: a.ID,
			Date:          a.Date.Format(domain.DateFormat),
			StartTime:     a.StartTime,
			ServiceID:     service.ID,
			ServiceName:   service.Name,
			Price:         service.Price,
			Rate:          rate,
			Amount:        amount,
		})
		report.Total = report.Total.Add(amount)
	}

	for _, bucket := range byEmployee {
		report.Employees = append(report.Employees, *bucket)
	}
	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeID < report.Employees[j].EmployeeID
	})

	return report
}
