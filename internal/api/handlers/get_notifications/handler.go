package get_notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/notifications"
)

const (
	msgInvalidEmployeeID = "ID de empleado inválido."
	msgInvalidReadFilter = "Parámetro read inválido, se espera true o false."
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/notifications?read=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := handlers.PathInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("GET /employees/{id}/notifications - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var read *bool
	if raw := r.URL.Query().Get("read"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /employees/{id}/notifications - Invalid read filter %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidReadFilter)
			return
		}
		read = &v
	}

	list, err := h.service.List(r.Context(), employeeID, read)
	if err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("GET /employees/{id}/notifications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)
			return
		}
		h.logger.Error("GET /employees/{id}/notifications - Failed to list notifications: employee_id=%d, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees/{id}/notifications - Notifications retrieved: employee_id=%d, total=%d", employeeID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
