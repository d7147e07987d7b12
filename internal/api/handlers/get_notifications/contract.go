package get_notifications

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context, employeeID int64, read *bool) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
