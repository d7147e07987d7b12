package save_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	saveAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/save_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// AppointmentRequest HTTP request model
type AppointmentRequest struct {
	ID         *int64 `json:"id,omitempty"` // Учитывается только при проверке переноса существующей записи
	Date       string `json:"date"`      // "2025-03-03"
	StartTime  string `json:"startTime"` // "10:00"
	ClientID   int64  `json:"clientId"`
	ServiceID  int64  `json:"serviceId"`
	EmployeeID int64  `json:"employeeId"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	ClientID        int64  `json:"clientId"`
	ClientName      string `json:"clientName"`
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	EmployeeID      int64  `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// CheckResponse результат проверки доступности
type CheckResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// id = nil для новой записи
func (r *AppointmentRequest) ToUseCaseRequest(id *int64) (*saveAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &saveAppointment.Request{
		ID:         id,
		Date:       date,
		StartTime:  startTime,
		ClientID:   r.ClientID,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		EmployeeID:      resp.EmployeeID,
		EmployeeName:    resp.EmployeeName,
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price.StringFixed(2),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromCheckResult конвертирует результат проверки в HTTP response
func FromCheckResult(res *saveAppointment.CheckResult) *CheckResponse {
	return &CheckResponse{
		Available: res.Available,
		Reason:    string(res.Reason),
		Message:   res.Message,
	}
}
