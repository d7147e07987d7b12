package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BuildIncome считает выручку за период: общую, по услугам и по сотрудникам
// Каждая запись попадает ровно в одну корзину услуги и ровно в одну корзину сотрудника,
// поэтому суммы по услугам и по сотрудникам равны общему итогу.
func BuildIncome(r domain.DateRange, s Snapshot) *IncomeReport {
	report := &IncomeReport{
		Range:      r,
		Total:      decimal.Zero,
		ByService:  []ServiceIncome{},
		ByEmployee: []EmployeeIncome{},
	}

	byService := make(map[int64]*ServiceIncome)
	byEmployee := make(map[int64]*EmployeeIncome)

	for _, item := range s.inRange(r) {
		price := item.service.Price

		report.Total = report.Total.Add(price)
		report.AppointmentsCount++

		sb, ok := byService[item.service.ID]
		if !ok {
			sb = &ServiceIncome{ServiceID: item.service.ID, ServiceName: item.service.Name, Total: decimal.Zero}
			byService[item.service.ID] = sb
		}
		sb.Total = sb.Total.Add(price)
		sb.AppointmentsCount++

		eb, ok := byEmployee[item.employee.ID]
		if !ok {
			eb = &EmployeeIncome{EmployeeID: item.employee.ID, EmployeeName: item.employee.Name, Total: decimal.Zero}
			byEmployee[item.employee.ID] = eb
		}
		eb.Total = eb.Total.Add(price)
		eb.AppointmentsCount++
	}

	for _, sb := range byService {
		report.ByService = append(report.ByService, *sb)
	}
	sort.Slice(report.ByService, func(i, j int) bool {
		return report.ByService[i].ServiceID < report.ByService[j].ServiceID
	})

	for _, eb := range byEmployee {
		report.ByEmployee = append(report.ByEmployee, *eb)
	}
	sort.Slice(report.ByEmployee, func(i, j int) bool {
		return report.ByEmployee[i].EmployeeID < report.ByEmployee[j].EmployeeID
	})

	return report
}
