package save_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	saveAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/save_appointment"
)

const (
	msgInvalidRequestBody   = "Cuerpo de la solicitud inválido."
	msgInvalidDate          = "Formato de fecha inválido, se espera YYYY-MM-DD."
	msgInvalidTime          = "Formato de hora inválido, se espera HH:MM."
	msgInvalidData          = "Datos del turno inválidos."
	msgInvalidAppointmentID = "ID de turno inválido."
	msgAppointmentNotFound  = "Turno no encontrado."
	msgEmployeeNotFound     = "Empleado no encontrado."
	msgClientNotFound       = "Cliente no encontrado."
)

type Handler struct {
	useCase SaveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase SaveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/appointments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, nil, "POST /appointments", http.StatusCreated)
}

// HandleUpdate PUT /api/v1/appointments/{appointmentId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	h.save(w, r, &id, "PUT /appointments/{id}", http.StatusOK)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id *int64, op string, successStatus int) {
	var req AppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", op, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondIfRejected(w, err) {
			h.logger.Warn("%s - Appointment rejected: employee_id=%d, date=%s, time=%s: %v",
				op, req.EmployeeID, req.Date, req.StartTime, err)
			return
		}

		switch {
		case errors.Is(err, saveAppointment.ErrInvalidInput):
			h.logger.Warn("%s - Invalid data: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, saveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("%s - Appointment not found: %v", op, err)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, saveAppointment.ErrEmployeeNotFound):
			h.logger.Warn("%s - Employee not found: employee_id=%d", op, req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, saveAppointment.ErrClientNotFound):
			h.logger.Warn("%s - Client not found: client_id=%d", op, req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("%s - Failed to save appointment: employee_id=%d, error=%v", op, req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment saved successfully: appointment_id=%d, employee_id=%d",
		op, result.ID, result.EmployeeID)
	handlers.RespondJSON(w, successStatus, FromUseCaseResponse(result))
}

// HandleCheck POST /api/v1/appointments/check
// Проверяет запись без сохранения. Отказ валидатора возвращается со статусом 200.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	const op = "POST /appointments/check"

	var req AppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(req.ID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", op, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Check(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveAppointment.ErrInvalidInput):
			h.logger.Warn("%s - Invalid data: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, saveAppointment.ErrEmployeeNotFound):
			h.logger.Warn("%s - Employee not found: employee_id=%d", op, req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, saveAppointment.ErrClientNotFound):
			h.logger.Warn("%s - Client not found: client_id=%d", op, req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("%s - Failed to check availability: employee_id=%d, error=%v", op, req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - employee_id=%d, date=%s, time=%s, available=%t",
		op, req.EmployeeID, req.Date, req.StartTime, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromCheckResult(result))
}
