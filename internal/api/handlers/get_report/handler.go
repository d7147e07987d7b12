package get_report

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/reports"
)

const (
	msgInvalidDateRange = "Período inválido: se requieren startDate y endDate en formato YYYY-MM-DD."
)

// buildFunc строит отчет за период
type buildFunc func(ctx context.Context, startDate, endDate string) (interface{}, error)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCommissions GET /api/v1/reports/commissions?startDate=&endDate=
func (h *Handler) HandleCommissions(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /reports/commissions", func(ctx context.Context, start, end string) (interface{}, error) {
		return h.service.Commissions(ctx, start, end)
	})
}

// HandleIncome GET /api/v1/reports/income?startDate=&endDate=
func (h *Handler) HandleIncome(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /reports/income", func(ctx context.Context, start, end string) (interface{}, error) {
		return h.service.Income(ctx, start, end)
	})
}

// HandleOccupancy GET /api/v1/reports/occupancy?startDate=&endDate=
func (h *Handler) HandleOccupancy(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /reports/occupancy", func(ctx context.Context, start, end string) (interface{}, error) {
		return h.service.Occupancy(ctx, start, end)
	})
}

// HandleCashFlow GET /api/v1/reports/cash-flow?startDate=&endDate=
func (h *Handler) HandleCashFlow(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /reports/cash-flow", func(ctx context.Context, start, end string) (interface{}, error) {
		return h.service.CashFlow(ctx, start, end)
	})
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, op string, build buildFunc) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	report, err := build(r.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidDateRange) {
			h.logger.Warn("%s - Invalid period: startDate=%q, endDate=%q: %v", op, startDate, endDate, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		h.logger.Error("%s - Failed to build report: startDate=%s, endDate=%s, error=%v", op, startDate, endDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Report built: startDate=%s, endDate=%s", op, startDate, endDate)
	handlers.RespondJSON(w, http.StatusOK, report)
}
