package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const monday = "2025-03-03"

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtures() (*domain.Employee, domain.ServiceCatalog) {
	employee := &domain.Employee{
		ID:   1,
		Name: "Ana",
		WorkingHours: []domain.WorkingHourWindow{
			{Weekday: "Lunes", StartTime: "09:00", EndTime: "17:00"},
		},
	}
	services := domain.NewServiceCatalog([]*domain.Service{
		{ID: 10, Name: "Corte", DurationMinutes: 60, Price: decimal.NewFromInt(100)},
		{ID: 11, Name: "Barba", DurationMinutes: 30, Price: decimal.NewFromInt(50)},
	})
	return employee, services
}

func appt(id int64, day string, at types.TimeString, serviceID, employeeID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		Date:       date(day),
		StartTime:  at,
		ClientID:   100,
		ServiceID:  serviceID,
		EmployeeID: employeeID,
	}
}

func TestValidate_MondayScenario(t *testing.T) {
	employee, services := fixtures()

	first := appt(0, monday, "09:00", 10, 1)
	require.NoError(t, Validate(first, employee, services, nil, nil))
	first.ID = 1

	existing := []*domain.Appointment{first}

	second := appt(0, monday, "09:30", 10, 1)
	err := Validate(second, employee, services, existing, nil)
	assert.ErrorIs(t, err, ErrOverlapsExisting)
	assert.Equal(t, ReasonOverlapsExisting, ReasonOf(err))

	late := appt(0, monday, "16:30", 10, 1)
	err = Validate(late, employee, services, existing, nil)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestValidate_Rejections(t *testing.T) {
	employee, services := fixtures()
	existing := []*domain.Appointment{appt(5, monday, "10:00", 10, 1)}

	tests := []struct {
		name      string
		candidate *domain.Appointment
		excluding *int64
		wantErr   error
	}{
		{
			name:      "unknown service",
			candidate: appt(0, monday, "12:00", 99, 1),
			wantErr:   ErrServiceNotFound,
		},
		{
			name:      "no schedule on tuesday",
			candidate: appt(0, "2025-03-04", "10:00", 10, 1),
			wantErr:   ErrNoScheduleForDay,
		},
		{
			name:      "starts before window",
			candidate: appt(0, monday, "08:30", 11, 1),
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "ends after window",
			candidate: appt(0, monday, "16:45", 11, 1),
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "entirely outside window",
			candidate: appt(0, monday, "19:00", 11, 1),
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "starts inside existing",
			candidate: appt(0, monday, "10:30", 11, 1),
			wantErr:   ErrOverlapsExisting,
		},
		{
			name:      "ends inside existing",
			candidate: appt(0, monday, "09:45", 11, 1),
			wantErr:   ErrOverlapsExisting,
		},
		{
			name:      "ends exactly at existing start",
			candidate: appt(0, monday, "09:30", 11, 1),
		},
		{
			name:      "starts exactly at existing end",
			candidate: appt(0, monday, "11:00", 10, 1),
		},
		{
			name:      "fills window to the minute",
			candidate: appt(0, monday, "16:00", 10, 1),
		},
		{
			name:      "editing itself is not a conflict",
			candidate: appt(5, monday, "10:30", 10, 1),
			excluding: ptr.Ptr(int64(5)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.candidate, employee, services, existing, tt.excluding)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsRejection(err))
		})
	}
}

func TestValidate_OtherEmployeesAppointmentsDoNotConflict(t *testing.T) {
	employee, services := fixtures()
	existing := []*domain.Appointment{appt(7, monday, "10:00", 10, 2)}

	err := Validate(appt(0, monday, "10:00", 10, 1), employee, services, existing, nil)
	assert.NoError(t, err)
}

func TestValidate_ExistingWithUnknownServiceIsSkipped(t *testing.T) {
	employee, services := fixtures()
	existing := []*domain.Appointment{appt(7, monday, "10:00", 404, 1)}

	err := Validate(appt(0, monday, "10:00", 10, 1), employee, services, existing, nil)
	assert.NoError(t, err)
}

func TestValidate_RejectionDetails(t *testing.T) {
	employee, services := fixtures()
	existing := []*domain.Appointment{appt(5, monday, "10:00", 10, 1)}

	err := Validate(appt(0, monday, "16:30", 10, 1), employee, services, existing, nil)
	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Contains(t, rej.Message, "09:00 - 17:00")
	assert.Contains(t, rej.Message, "lunes")
	require.NotNil(t, rej.Window)

	err = Validate(appt(0, monday, "10:15", 11, 1), employee, services, existing, nil)
	require.True(t, errors.As(err, &rej))
	assert.Contains(t, rej.Message, "2025-03-03 10:00")
	require.NotNil(t, rej.Conflict)
	assert.Equal(t, int64(5), rej.Conflict.ID)
}

func TestValidate_SequentialAcceptanceNeverOverlaps(t *testing.T) {
	employee, services := fixtures()

	var accepted []*domain.Appointment
	nextID := int64(1)

	// Пытаемся записать каждые 15 минут чередуя услуги
	for minutes := 9 * 60; minutes < 17*60; minutes += 15 {
		at, err := types.FromMinutes(minutes)
		require.NoError(t, err)

		serviceID := int64(10)
		if (minutes/15)%2 == 1 {
			serviceID = 11
		}

		candidate := appt(0, monday, at, serviceID, 1)
		if err := Validate(candidate, employee, services, accepted, nil); err != nil {
			require.True(t, IsRejection(err))
			continue
		}
		candidate.ID = nextID
		nextID++
		accepted = append(accepted, candidate)
	}

	require.NotEmpty(t, accepted)
	for i, a := range accepted {
		sa, _ := services.Find(a.ServiceID)
		ia, err := a.Interval(sa.DurationMinutes)
		require.NoError(t, err)
		for _, b := range accepted[i+1:] {
			sb, _ := services.Find(b.ServiceID)
			ib, err := b.Interval(sb.DurationMinutes)
			require.NoError(t, err)
			assert.False(t, ia.Overlaps(ib), "%s and %s overlap", a.StartTime, b.StartTime)
		}
	}
}

func TestValidate_NilEmployeeHasNoSchedule(t *testing.T) {
	_, services := fixtures()

	err := Validate(appt(0, monday, "10:00", 10, 1), nil, services, nil, nil)
	assert.ErrorIs(t, err, ErrNoScheduleForDay)
}

func TestValidate_MalformedTime(t *testing.T) {
	employee, services := fixtures()

	err := Validate(appt(0, monday, "nope", 10, 1), employee, services, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidAppointment)
	assert.False(t, IsRejection(err))
}

func TestValidate_WindowEndingAtMidnight(t *testing.T) {
	employee, services := fixtures()
	employee.WorkingHours = []domain.WorkingHourWindow{
		{Weekday: "Lunes", StartTime: "20:00", EndTime: types.EndOfDay},
	}

	assert.NoError(t, Validate(appt(0, monday, "23:00", 10, 1), employee, services, nil, nil))
	assert.ErrorIs(t, Validate(appt(0, monday, "23:30", 10, 1), employee, services, nil, nil), ErrOutsideWorkingHours)
}
