package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointments struct {
	list       []*domain.Appointment
	err        error
	lastFilter domain.AppointmentsFilter
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.list, f.err
}

type fakeEmployees map[int64]*domain.Employee

func (f fakeEmployees) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := f[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeCatalog domain.ServiceCatalog

func (f fakeCatalog) GetAll(context.Context) (domain.ServiceCatalog, error) {
	return domain.ServiceCatalog(f), nil
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

// 2025-03-03 - понедельник
func newUseCase(existing ...*domain.Appointment) (*UseCase, *fakeAppointments) {
	appointments := &fakeAppointments{list: existing}
	employees := fakeEmployees{1: {
		ID:           1,
		Name:         "Ana",
		WorkingHours: []domain.WorkingHourWindow{{Weekday: "lunes", StartTime: "09:00", EndTime: "12:00"}},
	}}
	catalog := fakeCatalog(domain.NewServiceCatalog([]*domain.Service{
		{ID: 10, Name: "Corte", DurationMinutes: 60, Price: decimal.NewFromInt(1000)},
	}))

	uc := NewUseCase(appointments, employees, catalog, 30, 0, nopLogger{})
	uc.timeProvider = fixedClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	return uc, appointments
}

func request(d string) *Request {
	return &Request{EmployeeID: 1, ServiceID: 10, Date: date(d)}
}

func TestExecute_FreeWindow(t *testing.T) {
	uc, appointments := newUseCase()

	resp, err := uc.Execute(context.Background(), request("2025-03-03"))
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)

	require.NotNil(t, appointments.lastFilter.EmployeeID)
	assert.Equal(t, int64(1), *appointments.lastFilter.EmployeeID)
	assert.Equal(t, date("2025-03-02"), *appointments.lastFilter.StartDate)
	assert.Equal(t, date("2025-03-04"), *appointments.lastFilter.EndDate)
}

func TestExecute_SkipsOverlaps(t *testing.T) {
	uc, _ := newUseCase(&domain.Appointment{
		ID: 5, Date: date("2025-03-03"), StartTime: "10:00", ServiceID: 10, EmployeeID: 1,
	})

	resp, err := uc.Execute(context.Background(), request("2025-03-03"))
	require.NoError(t, err)

	// 09:00-10:00 и 11:00-12:00 только касаются занятого 10:00-11:00
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, resp.Slots)
}

func TestExecute_Today(t *testing.T) {
	uc, _ := newUseCase()
	uc.timeProvider = fixedClock(time.Date(2025, 3, 3, 9, 40, 0, 0, time.UTC))
	uc.minNoticeMinutes = 30

	resp, err := uc.Execute(context.Background(), request("2025-03-03"))
	require.NoError(t, err)

	// ближайшее допустимое начало 10:10
	assert.Equal(t, []types.TimeString{"10:30", "11:00"}, resp.Slots)
}

func TestExecute_DayOff(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), request("2025-03-04"))
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		repoErr error
		wantErr error
	}{
		{name: "past date", req: request("2025-02-28"), wantErr: ErrInvalidDate},
		{name: "missing employee id", req: &Request{ServiceID: 10, Date: date("2025-03-03")}, wantErr: ErrInvalidInput},
		{name: "missing date", req: &Request{EmployeeID: 1, ServiceID: 10}, wantErr: ErrInvalidInput},
		{name: "unknown employee", req: &Request{EmployeeID: 2, ServiceID: 10, Date: date("2025-03-03")}, wantErr: ErrEmployeeNotFound},
		{name: "unknown service", req: &Request{EmployeeID: 1, ServiceID: 99, Date: date("2025-03-03")}, wantErr: ErrServiceNotFound},
		{name: "repository error", req: request("2025-03-03"), repoErr: errors.New("db down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, appointments := newUseCase()
			appointments.err = tt.repoErr

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateStartTimes(t *testing.T) {
	window := &domain.WorkingHourWindow{StartTime: "09:00", EndTime: "10:00"}

	starts, err := generateStartTimes(window, 45, 15)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:15"}, starts)

	starts, err = generateStartTimes(window, 90, 15)
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestGenerateStartTimes_WindowEndingAtMidnight(t *testing.T) {
	window := &domain.WorkingHourWindow{StartTime: "22:00", EndTime: types.EndOfDay}

	starts, err := generateStartTimes(window, 60, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"22:00", "22:30", "23:00"}, starts)
}
