package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dateRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

// 2025-03-03 - понедельник
func fixture() Snapshot {
	ana := &domain.Employee{
		ID:   1,
		Name: "Ana",
		WorkingHours: []domain.WorkingHourWindow{
			{EmployeeID: 1, Weekday: "Lunes", StartTime: "09:00", EndTime: "17:00"},
			{EmployeeID: 1, Weekday: "martes", StartTime: "10:00", EndTime: "14:00"},
		},
	}
	luis := &domain.Employee{
		ID:   2,
		Name: "Luis",
		WorkingHours: []domain.WorkingHourWindow{
			{EmployeeID: 2, Weekday: "miércoles", StartTime: "09:00", EndTime: "13:00"},
		},
	}

	haircut := &domain.Service{ID: 10, Name: "Corte", DurationMinutes: 60, Price: dec("1000"), CommissionRate: ptr.Ptr(dec("0.20"))}
	color := &domain.Service{
		ID: 11, Name: "Color", DurationMinutes: 90, Price: dec("2500"),
		Commissions: []domain.CommissionOverride{{ServiceID: 11, EmployeeID: 2, Rate: dec("0.30")}},
	}

	return Snapshot{
		Appointments: []*domain.Appointment{
			{ID: 3, Date: day("2025-03-03"), StartTime: "11:00", ServiceID: 10, EmployeeID: 1},
			{ID: 1, Date: day("2025-03-03"), StartTime: "09:00", ServiceID: 11, EmployeeID: 1},
			{ID: 2, Date: day("2025-03-05"), StartTime: "09:00", ServiceID: 11, EmployeeID: 2},
			// вне периода
			{ID: 4, Date: day("2025-03-10"), StartTime: "09:00", ServiceID: 10, EmployeeID: 1},
			// ссылается на несуществующие услугу и сотрудника
			{ID: 5, Date: day("2025-03-04"), StartTime: "10:00", ServiceID: 99, EmployeeID: 1},
			{ID: 6, Date: day("2025-03-04"), StartTime: "10:00", ServiceID: 10, EmployeeID: 99},
		},
		Services:  domain.NewServiceCatalog([]*domain.Service{haircut, color}),
		Employees: []*domain.Employee{luis, ana},
		Expenses: []*domain.Expense{
			{ID: 1, Description: "Shampoo", Amount: dec("300"), Date: day("2025-03-03"), Category: "Insumos"},
			{ID: 2, Description: "Luz", Amount: dec("450.50"), Date: day("2025-03-04"), Category: " "},
			{ID: 3, Description: "Tinte", Amount: dec("200"), Date: day("2025-03-05"), Category: "Insumos"},
			{ID: 4, Description: "Alquiler", Amount: dec("5000"), Date: day("2025-04-01"), Category: "Alquiler"},
		},
	}
}

func TestBuildCommissions(t *testing.T) {
	report := BuildCommissions(dateRange(t, "2025-03-03", "2025-03-09"), fixture())

	require.Len(t, report.Employees, 2)

	ana := report.Employees[0]
	assert.Equal(t, int64(1), ana.EmployeeID)
	require.Len(t, ana.Lines, 2)
	// строки упорядочены по времени начала
	assert.Equal(t, int64(1), ana.Lines[0].AppointmentID)
	assert.Equal(t, types.TimeString("09:00"), ana.Lines[0].StartTime)
	assert.True(t, dec("0.10").Equal(ana.Lines[0].Rate), "fallback rate")
	assert.True(t, dec("250").Equal(ana.Lines[0].Amount))
	assert.True(t, dec("0.20").Equal(ana.Lines[1].Rate), "service rate")
	assert.True(t, dec("200").Equal(ana.Lines[1].Amount))
	assert.True(t, dec("450").Equal(ana.Total))

	luis := report.Employees[1]
	assert.Equal(t, int64(2), luis.EmployeeID)
	require.Len(t, luis.Lines, 1)
	assert.True(t, dec("0.30").Equal(luis.Lines[0].Rate), "override rate")
	assert.True(t, dec("750").Equal(luis.Total))

	assert.True(t, dec("1200").Equal(report.Total))
}

func TestBuildCommissions_Conservation(t *testing.T) {
	report := BuildCommissions(dateRange(t, "2025-03-01", "2025-03-31"), fixture())

	sum := decimal.Zero
	for _, e := range report.Employees {
		lines := decimal.Zero
		for _, l := range e.Lines {
			lines = lines.Add(l.Amount)
		}
		assert.True(t, lines.Equal(e.Total), "employee %d", e.EmployeeID)
		sum = sum.Add(e.Total)
	}
	assert.True(t, sum.Equal(report.Total))
}

func TestBuildCommissions_Empty(t *testing.T) {
	report := BuildCommissions(dateRange(t, "2024-01-01", "2024-01-31"), fixture())

	assert.Empty(t, report.Employees)
	assert.NotNil(t, report.Employees)
	assert.True(t, report.Total.IsZero())
}

func TestBuildIncome(t *testing.T) {
	report := BuildIncome(dateRange(t, "2025-03-03", "2025-03-09"), fixture())

	assert.Equal(t, 3, report.AppointmentsCount)
	assert.True(t, dec("6000").Equal(report.Total))

	require.Len(t, report.ByService, 2)
	assert.Equal(t, int64(10), report.ByService[0].ServiceID)
	assert.Equal(t, 1, report.ByService[0].AppointmentsCount)
	assert.True(t, dec("1000").Equal(report.ByService[0].Total))
	assert.Equal(t, int64(11), report.ByService[1].ServiceID)
	assert.Equal(t, 2, report.ByService[1].AppointmentsCount)
	assert.True(t, dec("5000").Equal(report.ByService[1].Total))

	require.Len(t, report.ByEmployee, 2)
	assert.Equal(t, "Ana", report.ByEmployee[0].EmployeeName)
	assert.True(t, dec("3500").Equal(report.ByEmployee[0].Total))
	assert.Equal(t, "Luis", report.ByEmployee[1].EmployeeName)
	assert.True(t, dec("2500").Equal(report.ByEmployee[1].Total))

	byService, byEmployee := decimal.Zero, decimal.Zero
	for _, s := range report.ByService {
		byService = byService.Add(s.Total)
	}
	for _, e := range report.ByEmployee {
		byEmployee = byEmployee.Add(e.Total)
	}
	assert.True(t, byService.Equal(report.Total))
	assert.True(t, byEmployee.Equal(report.Total))
}

func TestBuildOccupancy_SingleDay(t *testing.T) {
	snapshot := Snapshot{
		Appointments: []*domain.Appointment{
			{ID: 1, Date: day("2025-03-03"), StartTime: "10:00", ServiceID: 1, EmployeeID: 1},
			{ID: 2, Date: day("2025-03-03"), StartTime: "14:00", ServiceID: 1, EmployeeID: 1},
		},
		Services: domain.NewServiceCatalog([]*domain.Service{{ID: 1, Name: "Corte", DurationMinutes: 60, Price: dec("100")}}),
		Employees: []*domain.Employee{{
			ID: 1, Name: "Ana",
			WorkingHours: []domain.WorkingHourWindow{{Weekday: "lunes", StartTime: "09:00", EndTime: "17:00"}},
		}},
	}

	report := BuildOccupancy(dateRange(t, "2025-03-03", "2025-03-03"), snapshot)

	require.Len(t, report.Employees, 1)
	e := report.Employees[0]
	assert.Equal(t, 480, e.WorkingMinutes)
	assert.Equal(t, 120, e.OccupiedMinutes)
	assert.InDelta(t, 8.0, e.WorkingHours, 1e-9)
	assert.InDelta(t, 2.0, e.OccupiedHours, 1e-9)
	assert.InDelta(t, 25.0, e.Percentage, 1e-9)
}

func TestBuildOccupancy_Week(t *testing.T) {
	report := BuildOccupancy(dateRange(t, "2025-03-03", "2025-03-09"), fixture())

	require.Len(t, report.Employees, 2)

	ana := report.Employees[0]
	assert.Equal(t, int64(1), ana.EmployeeID)
	// lunes 8h + martes 4h
	assert.Equal(t, 720, ana.WorkingMinutes)
	assert.Equal(t, 150, ana.OccupiedMinutes)
	assert.InDelta(t, 20.83, ana.Percentage, 1e-9)

	luis := report.Employees[1]
	assert.Equal(t, 240, luis.WorkingMinutes)
	assert.Equal(t, 90, luis.OccupiedMinutes)
	assert.InDelta(t, 37.5, luis.Percentage, 1e-9)
}

func TestBuildOccupancy_NoWorkingTime(t *testing.T) {
	// 2025-03-08 - суббота, ни у кого нет окна
	report := BuildOccupancy(dateRange(t, "2025-03-08", "2025-03-08"), fixture())

	require.Len(t, report.Employees, 2)
	for _, e := range report.Employees {
		assert.Zero(t, e.WorkingMinutes)
		assert.Zero(t, e.OccupiedMinutes)
		assert.Zero(t, e.Percentage)
	}
}

func TestBuildCashFlow(t *testing.T) {
	report := BuildCashFlow(dateRange(t, "2025-03-03", "2025-03-09"), fixture())

	assert.True(t, dec("6000").Equal(report.Income.Total))
	assert.True(t, dec("950.50").Equal(report.TotalExpenses))
	assert.True(t, dec("5049.50").Equal(report.Net))

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Insumos", report.ByCategory[0].Category)
	assert.Equal(t, 2, report.ByCategory[0].ExpensesCount)
	assert.True(t, dec("500").Equal(report.ByCategory[0].Total))
	assert.Equal(t, UncategorizedExpense, report.ByCategory[1].Category)
	assert.True(t, dec("450.50").Equal(report.ByCategory[1].Total))
}
