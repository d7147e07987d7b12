package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "lunes", WeekdayName(day("2025-03-03")))
	assert.Equal(t, "miércoles", WeekdayName(day("2025-03-05")))
	assert.Equal(t, "sábado", WeekdayName(day("2025-03-08")))
	assert.Equal(t, "domingo", WeekdayName(day("2025-03-09")))
}

func TestSameWeekday(t *testing.T) {
	tests := []struct {
		stored string
		day    time.Weekday
		want   bool
	}{
		{"Lunes", time.Monday, true},
		{"LUNES", time.Monday, true},
		{" lunes ", time.Monday, true},
		{"Miércoles", time.Wednesday, true},
		{"miercoles", time.Wednesday, true},
		{"Sabado", time.Saturday, true},
		{"Martes", time.Monday, false},
		{"Monday", time.Monday, false},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			assert.Equal(t, tt.want, SameWeekday(tt.stored, tt.day))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("Jueves")
	require.True(t, ok)
	assert.Equal(t, time.Thursday, d)

	_, ok = ParseWeekday("feriado")
	assert.False(t, ok)

	assert.Equal(t, "Miércoles", DisplayWeekday(time.Wednesday))
}

func TestEmployee_WindowFor_FirstMatchWins(t *testing.T) {
	e := &Employee{
		WorkingHours: []WorkingHourWindow{
			{Weekday: "Martes", StartTime: "10:00", EndTime: "14:00"},
			{Weekday: "Lunes", StartTime: "09:00", EndTime: "17:00"},
			{Weekday: "lunes", StartTime: "12:00", EndTime: "20:00"},
		},
	}

	w, ok := e.WindowFor(day("2025-03-03"))
	require.True(t, ok)
	assert.Equal(t, "09:00", w.StartTime.String())
	assert.Equal(t, 480, e.WorkingMinutesOn(day("2025-03-03")))

	_, ok = e.WindowFor(day("2025-03-09"))
	assert.False(t, ok)
	assert.Equal(t, 0, e.WorkingMinutesOn(day("2025-03-09")))
}

func TestWorkingHourWindow_DurationMinutes(t *testing.T) {
	assert.Equal(t, 90, (&WorkingHourWindow{StartTime: "09:00", EndTime: "10:30"}).DurationMinutes())
	assert.Equal(t, 120, (&WorkingHourWindow{StartTime: "22:00", EndTime: "24:00"}).DurationMinutes())
	assert.Equal(t, 0, (&WorkingHourWindow{StartTime: "18:00", EndTime: "09:00"}).DurationMinutes())
	assert.Equal(t, 0, (&WorkingHourWindow{StartTime: "", EndTime: "09:00"}).DurationMinutes())
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: day("2025-03-03").Add(9 * time.Hour), End: day("2025-03-03").Add(10 * time.Hour)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"same", base, true},
		{"inside", Interval{base.Start.Add(15 * time.Minute), base.End.Add(-15 * time.Minute)}, true},
		{"partial", Interval{base.Start.Add(30 * time.Minute), base.End.Add(30 * time.Minute)}, true},
		{"touching end", Interval{base.End, base.End.Add(time.Hour)}, false},
		{"touching start", Interval{base.Start.Add(-time.Hour), base.Start}, false},
		{"disjoint", Interval{base.End.Add(time.Hour), base.End.Add(2 * time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestAppointment_Interval(t *testing.T) {
	a := &Appointment{Date: day("2025-03-03"), StartTime: "23:30"}

	i, err := a.Interval(60)
	require.NoError(t, err)
	assert.Equal(t, day("2025-03-04").Add(30*time.Minute), i.End)
}

func TestDateRange(t *testing.T) {
	r, err := NewDateRange("2025-03-01", "2025-03-07")
	require.NoError(t, err)

	assert.Equal(t, 7, r.LengthDays())
	assert.True(t, r.Contains(day("2025-03-01")))
	assert.True(t, r.Contains(day("2025-03-07").Add(23*time.Hour)))
	assert.False(t, r.Contains(day("2025-03-08")))
	assert.False(t, r.Contains(day("2025-02-28")))

	_, err = NewDateRange("2025-03-07", "2025-03-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange("03/01/2025", "2025-03-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestServiceCatalog(t *testing.T) {
	catalog := NewServiceCatalog([]*Service{{ID: 1, Name: "Corte"}, nil, {ID: 2, Name: "Barba"}})

	s, ok := catalog.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Barba", s.Name)

	_, ok = catalog.Find(3)
	assert.False(t, ok)
}
