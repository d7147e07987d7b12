package get_report

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
)

type ReportService interface {
	Commissions(ctx context.Context, startDate, endDate string) (*models.CommissionReportResponse, error)
	Income(ctx context.Context, startDate, endDate string) (*models.IncomeReportResponse, error)
	Occupancy(ctx context.Context, startDate, endDate string) (*models.OccupancyReportResponse, error)
	CashFlow(ctx context.Context, startDate, endDate string) (*models.CashFlowReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
