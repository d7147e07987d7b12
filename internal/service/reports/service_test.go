package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
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

type fakeEmployees []*domain.Employee

func (f fakeEmployees) List(context.Context) ([]*domain.Employee, error) { return f, nil }

type fakeCatalog domain.ServiceCatalog

func (f fakeCatalog) GetAll(context.Context) (domain.ServiceCatalog, error) {
	return domain.ServiceCatalog(f), nil
}

type fakeExpenses struct {
	list   []*domain.Expense
	called bool
}

func (f *fakeExpenses) GetByDateRange(context.Context, time.Time, time.Time) ([]*domain.Expense, error) {
	f.called = true
	return f.list, nil
}

type fakeTx struct{ calls int }

func (t *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeMetrics map[string]int

func (m fakeMetrics) IncReport(kind string) { m[kind]++ }

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

type env struct {
	svc          *Service
	appointments *fakeAppointments
	expenses     *fakeExpenses
	tx           *fakeTx
	metrics      fakeMetrics
}

func newEnv(maxRangeDays int) *env {
	e := &env{
		appointments: &fakeAppointments{list: []*domain.Appointment{
			{ID: 1, Date: day("2025-03-03"), StartTime: "10:00", ServiceID: 10, EmployeeID: 1},
			{ID: 2, Date: day("2025-03-03"), StartTime: "14:00", ServiceID: 10, EmployeeID: 1},
		}},
		expenses: &fakeExpenses{list: []*domain.Expense{
			{ID: 1, Amount: decimal.NewFromInt(500), Date: day("2025-03-03"), Category: "Insumos"},
		}},
		tx:      &fakeTx{},
		metrics: fakeMetrics{},
	}

	employees := fakeEmployees{{
		ID: 1, Name: "Ana",
		WorkingHours: []domain.WorkingHourWindow{{Weekday: "Lunes", StartTime: "09:00", EndTime: "17:00"}},
	}}
	catalog := fakeCatalog(domain.NewServiceCatalog([]*domain.Service{
		{ID: 10, Name: "Corte", DurationMinutes: 60, Price: decimal.NewFromInt(1000)},
	}))

	e.svc = NewService(e.appointments, employees, catalog, e.expenses, e.tx, maxRangeDays, nopLogger{}).WithMetrics(e.metrics)
	return e
}

func TestCommissions(t *testing.T) {
	e := newEnv(366)

	resp, err := e.svc.Commissions(context.Background(), "2025-03-03", "2025-03-03")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", resp.Period.StartDate)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "200.00", resp.Employees[0].Total)
	assert.Equal(t, "0.1", resp.Employees[0].Lines[0].Rate)
	assert.Equal(t, "100.00", resp.Employees[0].Lines[0].Amount)
	assert.Equal(t, "200.00", resp.Total)

	assert.Equal(t, 1, e.tx.calls)
	assert.Equal(t, 1, e.metrics[KindCommissions])
	assert.False(t, e.expenses.called, "expenses are read only for cash flow")
	assert.Equal(t, day("2025-03-03"), *e.appointments.lastFilter.StartDate)
}

func TestIncome(t *testing.T) {
	resp, err := newEnv(0).svc.Income(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, "2000.00", resp.Total)
	assert.Equal(t, 2, resp.AppointmentsCount)
	require.Len(t, resp.ByService, 1)
	assert.Equal(t, 2, resp.ByService[0].AppointmentsCount)
}

func TestOccupancy(t *testing.T) {
	resp, err := newEnv(366).svc.Occupancy(context.Background(), "2025-03-03", "2025-03-03")
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	o := resp.Employees[0]
	assert.Equal(t, 480, o.WorkingMinutes)
	assert.Equal(t, 120, o.OccupiedMinutes)
	assert.InDelta(t, 25.0, o.Percentage, 1e-9)
}

func TestCashFlow(t *testing.T) {
	e := newEnv(366)

	resp, err := e.svc.CashFlow(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	assert.True(t, e.expenses.called)
	assert.Equal(t, "2000.00", resp.Income.Total)
	assert.Equal(t, "500.00", resp.TotalExpenses)
	assert.Equal(t, "1500.00", resp.Net)
	require.Len(t, resp.ByCategory, 1)
	assert.Equal(t, "Insumos", resp.ByCategory[0].Category)
	assert.Equal(t, 1, e.metrics[KindCashFlow])
}

func TestInvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{name: "missing start", start: "", end: "2025-03-03"},
		{name: "missing end", start: "2025-03-03", end: ""},
		{name: "malformed", start: "03/03/2025", end: "2025-03-03"},
		{name: "inverted", start: "2025-03-10", end: "2025-03-03"},
		{name: "too long", start: "2024-01-01", end: "2025-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(366)

			_, err := e.svc.Income(context.Background(), tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
			assert.Zero(t, e.tx.calls)
			assert.Empty(t, e.metrics)
		})
	}
}

func TestRepositoryError(t *testing.T) {
	e := newEnv(366)
	e.appointments.err = errors.New("db down")

	_, err := e.svc.Occupancy(context.Background(), "2025-03-03", "2025-03-03")
	assert.ErrorIs(t, err, ErrInternal)
}
