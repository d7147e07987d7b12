package mark_notification_read

import "context"

type NotificationService interface {
	SetRead(ctx context.Context, id int64, read bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
