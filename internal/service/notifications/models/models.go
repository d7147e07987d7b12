package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentAssigned данные о назначенной сотруднику записи
type AppointmentAssigned struct {
	Employee    *domain.Employee
	ClientName  string
	ServiceName string
	Date        time.Time
	StartTime   string
}

// NotificationResponse уведомление сотрудника
type NotificationResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employeeId"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"createdAt"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainNotificationList конвертирует список уведомлений
func FromDomainNotificationList(list []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
		Total:         len(list),
	}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, FromDomainNotification(n))
	}
	return resp
}
