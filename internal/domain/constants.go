package domain

import "github.com/shopspring/decimal"

// DefaultCommissionRate applies when a service has neither an employee override nor its own rate
var DefaultCommissionRate = decimal.RequireFromString("0.10")

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxReportRangeDays default upper bound for a report period
const MaxReportRangeDays = 366

// DefaultSlotStepMinutes step between candidate start times when listing free time
const DefaultSlotStepMinutes = 15
