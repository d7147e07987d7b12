package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/reports"
)

// Денежные суммы отдаются строками с двумя знаками, ставки - как есть

// PeriodResponse период отчета
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CommissionLineResponse комиссия по одной записи
type CommissionLineResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	ServiceID     int64  `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	Price         string `json:"price"`
	Rate          string `json:"rate"`
	Amount        string `json:"amount"`
}

// EmployeeCommissionResponse комиссии сотрудника
type EmployeeCommissionResponse struct {
	EmployeeID   int64                    `json:"employeeId"`
	EmployeeName string                   `json:"employeeName"`
	Total        string                   `json:"total"`
	Lines        []CommissionLineResponse `json:"lines"`
}

// CommissionReportResponse отчет по комиссиям
type CommissionReportResponse struct {
	Period    PeriodResponse               `json:"period"`
	Employees []EmployeeCommissionResponse `json:"employees"`
	Total     string                       `json:"total"`
}

// ServiceIncomeResponse выручка по услуге
type ServiceIncomeResponse struct {
	ServiceID         int64  `json:"serviceId"`
	ServiceName       string `json:"serviceName"`
	Total             string `json:"total"`
	AppointmentsCount int    `json:"appointmentsCount"`
}

// EmployeeIncomeResponse выручка по сотруднику
type EmployeeIncomeResponse struct {
	EmployeeID        int64  `json:"employeeId"`
	EmployeeName      string `json:"employeeName"`
	Total             string `json:"total"`
	AppointmentsCount int    `json:"appointmentsCount"`
}

// IncomeReportResponse отчет по выручке
type IncomeReportResponse struct {
	Period            PeriodResponse           `json:"period"`
	Total             string                   `json:"total"`
	AppointmentsCount int                      `json:"appointmentsCount"`
	ByService         []ServiceIncomeResponse  `json:"byService"`
	ByEmployee        []EmployeeIncomeResponse `json:"byEmployee"`
}

// EmployeeOccupancyResponse загрузка сотрудника
type EmployeeOccupancyResponse struct {
	EmployeeID      int64   `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	WorkingMinutes  int     `json:"workingMinutes"`
	OccupiedMinutes int     `json:"occupiedMinutes"`
	WorkingHours    float64 `json:"workingHours"`
	OccupiedHours   float64 `json:"occupiedHours"`
	Percentage      float64 `json:"percentage"`
}

// OccupancyReportResponse отчет по загрузке
type OccupancyReportResponse struct {
	Period    PeriodResponse              `json:"period"`
	Employees []EmployeeOccupancyResponse `json:"employees"`
}

// CategoryExpenseResponse расходы по категории
type CategoryExpenseResponse struct {
	Category      string `json:"category"`
	Total         string `json:"total"`
	ExpensesCount int    `json:"expensesCount"`
}

// CashFlowReportResponse отчет о движении денег
type CashFlowReportResponse struct {
	Period        PeriodResponse            `json:"period"`
	Income        IncomeReportResponse      `json:"income"`
	TotalExpenses string                    `json:"totalExpenses"`
	ByCategory    []CategoryExpenseResponse `json:"byCategory"`
	Net           string                    `json:"net"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func period(r domain.DateRange) PeriodResponse {
	return PeriodResponse{
		StartDate: r.Start.Format(domain.DateFormat),
		EndDate:   r.End.Format(domain.DateFormat),
	}
}

// FromCommissionReport конвертирует отчет по комиссиям
func FromCommissionReport(r *reports.CommissionReport) *CommissionReportResponse {
	resp := &CommissionReportResponse{
		Period:    period(r.Range),
		Employees: make([]EmployeeCommissionResponse, 0, len(r.Employees)),
		Total:     money(r.Total),
	}
	for _, e := range r.Employees {
		lines := make([]CommissionLineResponse, 0, len(e.Lines))
		for _, l := range e.Lines {
			lines = append(lines, CommissionLineResponse{
				AppointmentID: l.AppointmentID,
				Date:          l.Date,
				StartTime:     l.StartTime.String(),
				ServiceID:     l.ServiceID,
				ServiceName:   l.ServiceName,
				Price:         money(l.Price),
				Rate:          l.Rate.String(),
				Amount:        money(l.Amount),
			})
		}
		resp.Employees = append(resp.Employees, EmployeeCommissionResponse{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			Total:        money(e.Total),
			Lines:        lines,
		})
	}
	return resp
}

// FromIncomeReport конвертирует отчет по выручке
func FromIncomeReport(r *reports.IncomeReport) *IncomeReportResponse {
	resp := &IncomeReportResponse{
		Period:            period(r.Range),
		Total:             money(r.Total),
		AppointmentsCount: r.AppointmentsCount,
		ByService:         make([]ServiceIncomeResponse, 0, len(r.ByService)),
		ByEmployee:        make([]EmployeeIncomeResponse, 0, len(r.ByEmployee)),
	}
	for _, s := range r.ByService {
		resp.ByService = append(resp.ByService, ServiceIncomeResponse{
			ServiceID:         s.ServiceID,
			ServiceName:       s.ServiceName,
			Total:             money(s.Total),
			AppointmentsCount: s.AppointmentsCount,
		})
	}
	for _, e := range r.ByEmployee {
		resp.ByEmployee = append(resp.ByEmployee, EmployeeIncomeResponse{
			EmployeeID:        e.EmployeeID,
			EmployeeName:      e.EmployeeName,
			Total:             money(e.Total),
			AppointmentsCount: e.AppointmentsCount,
		})
	}
	return resp
}

// FromOccupancyReport конвертирует отчет по загрузке
func FromOccupancyReport(r *reports.OccupancyReport) *OccupancyReportResponse {
	resp := &OccupancyReportResponse{
		Period:    period(r.Range),
		Employees: make([]EmployeeOccupancyResponse, 0, len(r.Employees)),
	}
	for _, e := range r.Employees {
		resp.Employees = append(resp.Employees, EmployeeOccupancyResponse{
			EmployeeID:      e.EmployeeID,
			EmployeeName:    e.EmployeeName,
			WorkingMinutes:  e.WorkingMinutes,
			OccupiedMinutes: e.OccupiedMinutes,
			WorkingHours:    e.WorkingHours,
			OccupiedHours:   e.OccupiedHours,
			Percentage:      e.Percentage,
		})
	}
	return resp
}

// FromCashFlowReport конвертирует отчет о движении денег
func FromCashFlowReport(r *reports.CashFlowReport) *CashFlowReportResponse {
	resp := &CashFlowReportResponse{
		Period:        period(r.Range),
		Income:        *FromIncomeReport(&r.Income),
		TotalExpenses: money(r.TotalExpenses),
		ByCategory:    make([]CategoryExpenseResponse, 0, len(r.ByCategory)),
		Net:           money(r.Net),
	}
	for _, c := range r.ByCategory {
		resp.ByCategory = append(resp.ByCategory, CategoryExpenseResponse{
			Category:      c.Category,
			Total:         money(c.Total),
			ExpensesCount: c.ExpensesCount,
		})
	}
	return resp
}
