package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionOverride is an employee-specific commission rate for a service
type CommissionOverride struct {
	ID         int64
	ServiceID  int64
	EmployeeID int64
	Rate       decimal.Decimal // fraction, 0.15 = 15%
}

// Service represents a service offered by the salon
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	CommissionRate  *decimal.Decimal // nil = not set, DefaultCommissionRate applies
	Commissions     []CommissionOverride

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OverrideFor returns the commission override for the employee, if any
func (s *Service) OverrideFor(employeeID int64) (*CommissionOverride, bool) {
	for i := range s.Commissions {
		if s.Commissions[i].EmployeeID == employeeID {
			return &s.Commissions[i], true
		}
	}
	return nil, false
}

// Duration returns the service duration as time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// ServiceCatalog indexes services by id
type ServiceCatalog map[int64]*Service

// NewServiceCatalog builds a catalog from a list of services
func NewServiceCatalog(services []*Service) ServiceCatalog {
	catalog := make(ServiceCatalog, len(services))
	for _, s := range services {
		if s != nil {
			catalog[s.ID] = s
		}
	}
	return catalog
}

// Find returns the service by id
func (c ServiceCatalog) Find(id int64) (*Service, bool) {
	s, ok := c[id]
	return s, ok
}
