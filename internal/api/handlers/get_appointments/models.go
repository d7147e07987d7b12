package get_appointments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// parseQuery читает фильтры ?startDate=&endDate=&employeeId=
func parseQuery(q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if raw := q.Get("startDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q: %v", raw, err)
		}
		req.StartDate = &d
	}

	if raw := q.Get("endDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q: %v", raw, err)
		}
		req.EndDate = &d
	}

	if raw := q.Get("employeeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid employeeId %q: %v", raw, err)
		}
		req.EmployeeID = &id
	}

	return req, nil
}
