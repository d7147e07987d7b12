package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ListRequest фильтр списка записей
type ListRequest struct {
	StartDate  *time.Time // Начало периода (опционально)
	EndDate    *time.Time // Конец периода (опционально)
	EmployeeID *int64     // Сотрудник (опционально)
}

// AppointmentResponse запись
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`      // "2025-03-03"
	StartTime  string `json:"startTime"` // "10:00"
	ClientID   int64  `json:"clientId"`
	ServiceID  int64  `json:"serviceId"`
	EmployeeID int64  `json:"employeeId"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		Date:       a.Date.Format(domain.DateFormat),
		StartTime:  a.StartTime.String(),
		ClientID:   a.ClientID,
		ServiceID:  a.ServiceID,
		EmployeeID: a.EmployeeID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a))
	}
	return resp
}
