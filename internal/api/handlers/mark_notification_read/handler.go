package mark_notification_read

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "ID de notificación inválido."
	msgInvalidRequestBody    = "Cuerpo de la solicitud inválido: se espera {\"read\": true|false}."
	msgNotificationNotFound  = "Notificación no encontrada."
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

// Handle PATCH /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "notificationId")
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id} - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	var req SetReadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Read == nil {
		h.logger.Warn("PATCH /notifications/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetRead(r.Context(), id, *req.Read); err != nil {
		if errors.Is(err, notifications.ErrNotificationNotFound) {
			h.logger.Warn("PATCH /notifications/{id} - Notification not found: notification_id=%d", id)
			handlers.RespondNotFound(w, msgNotificationNotFound)
			return
		}
		h.logger.Error("PATCH /notifications/{id} - Failed to update notification: notification_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/{id} - Notification updated: notification_id=%d, read=%t", id, *req.Read)
	handlers.RespondNoContent(w)
}
