package commission

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Source откуда взята ставка комиссии
type Source string

const (
	SourceOverride       Source = "override"
	SourceServiceDefault Source = "service"
	SourceFallback       Source = "fallback"
)

// ResolveRate возвращает ставку комиссии сотрудника за услугу
// Приоритет: персональная ставка сотрудника > ставка услуги > domain.DefaultCommissionRate
func ResolveRate(service *domain.Service, employeeID int64) decimal.Decimal {
	rate, _ := Resolve(service, employeeID)
	return rate
}

// Resolve как ResolveRate, но дополнительно сообщает источник ставки
// Явно заданная нулевая ставка услуги считается заданной и не заменяется на 0.10
func Resolve(service *domain.Service, employeeID int64) (decimal.Decimal, Source) {
	if service == nil {
		return domain.DefaultCommissionRate, SourceFallback
	}

	if override, ok := service.OverrideFor(employeeID); ok {
		return override.Rate, SourceOverride
	}

	if service.CommissionRate != nil {
		return *service.CommissionRate, SourceServiceDefault
	}

	return domain.DefaultCommissionRate, SourceFallback
}

// Amount считает сумму комиссии: цена услуги * ставка
func Amount(service *domain.Service, employeeID int64) (decimal.Decimal, decimal.Decimal) {
	rate := ResolveRate(service, employeeID)
	return service.Price.Mul(rate), rate
}
