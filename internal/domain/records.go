package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client represents a salon client
type Client struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expense represents a business expense (gasto)
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Notification is a message addressed to an employee inbox
type Notification struct {
	ID         int64
	EmployeeID int64
	Message    string
	Read       bool
	CreatedAt  time.Time
}

// NotificationsFilter фильтр уведомлений сотрудника
type NotificationsFilter struct {
	EmployeeID int64
	Read       *bool // nil - все уведомления
}
