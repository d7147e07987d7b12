package save_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание или изменение записи
type Request struct {
	ID         *int64           // nil - новая запись
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	ClientID   int64
	ServiceID  int64
	EmployeeID int64
}

// Response модель ответа с сохраненной записью
type Response struct {
	ID         int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	ClientID   int64
	ServiceID  int64
	EmployeeID int64

	// Денормализованные данные
	ClientName      string
	ServiceName     string
	EmployeeName    string
	DurationMinutes int
	Price           decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckResult результат проверки без сохранения
type CheckResult struct {
	Available bool
	Reason    availability.Reason
	Message   string
}

const resultAccepted = "accepted"
