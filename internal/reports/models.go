package reports

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Snapshot read-only data a report is computed from
// Services and Employees may contain more records than referenced by Appointments
type Snapshot struct {
	Appointments []*domain.Appointment
	Services     domain.ServiceCatalog
	Employees    []*domain.Employee
	Expenses     []*domain.Expense
}

// CommissionLine per-appointment breakdown of a commission
type CommissionLine struct {
	AppointmentID int64
	Date          string
	StartTime     types.TimeString
	ServiceID     int64
	ServiceName   string
	Price         decimal.Decimal
	Rate          decimal.Decimal
	Amount        decimal.Decimal
}

// EmployeeCommission commissions earned by one employee
type EmployeeCommission struct {
	EmployeeID   int64
	EmployeeName string
	Total        decimal.Decimal
	Lines        []CommissionLine
}

// CommissionReport commissions per employee over a date range
type CommissionReport struct {
	Range     domain.DateRange
	Employees []EmployeeCommission
	Total     decimal.Decimal
}

// ServiceIncome income bucket for one service
type ServiceIncome struct {
	ServiceID         int64
	ServiceName       string
	Total             decimal.Decimal
	AppointmentsCount int
}

// EmployeeIncome income bucket for one employee
type EmployeeIncome struct {
	EmployeeID        int64
	EmployeeName      string
	Total             decimal.Decimal
	AppointmentsCount int
}

// IncomeReport income totals over a date range
type IncomeReport struct {
	Range             domain.DateRange
	Total             decimal.Decimal
	AppointmentsCount int
	ByService         []ServiceIncome
	ByEmployee        []EmployeeIncome
}

// EmployeeOccupancy scheduled vs booked time for one employee
type EmployeeOccupancy struct {
	EmployeeID      int64
	EmployeeName    string
	WorkingMinutes  int
	OccupiedMinutes int
	WorkingHours    float64
	OccupiedHours   float64
	Percentage      float64 // 0 when WorkingMinutes == 0
}

// OccupancyReport occupancy of every employee over a date range
type OccupancyReport struct {
	Range     domain.DateRange
	Employees []EmployeeOccupancy
}

// CategoryExpense expenses grouped by category
type CategoryExpense struct {
	Category      string
	Total         decimal.Decimal
	ExpensesCount int
}

// CashFlowReport income, expenses and net result over a date range
type CashFlowReport struct {
	Range         domain.DateRange
	Income        IncomeReport
	TotalExpenses decimal.Decimal
	ByCategory    []CategoryExpense
	Net           decimal.Decimal
}
