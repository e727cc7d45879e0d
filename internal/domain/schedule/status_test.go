package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 was a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func activeDay(start, end string) DaySchedule {
	return DaySchedule{Active: true, Start: start, End: end}
}

func weeklyWith(day Weekday, ds DaySchedule) *WeeklySchedule {
	ws := DefaultWeekly("barber-1")
	ws.Days[day] = ds
	return ws
}

func TestIsOpenNilSchedule(t *testing.T) {
	assert.False(t, IsOpen(nil, mondayAt(12, 0)))
}

func TestIsOpenManualOverride(t *testing.T) {
	open := OverrideOpen
	closed := OverrideClosed

	// Override "open" wins even on an inactive day at night.
	ws := weeklyWith(Monday, DaySchedule{Active: false, Start: "09:00", End: "18:00"})
	ws.ManualOverride = &open
	assert.True(t, IsOpen(ws, mondayAt(3, 0)))

	// Override "closed" wins even mid-working-hours.
	ws = weeklyWith(Monday, activeDay("09:00", "18:00"))
	ws.ManualOverride = &closed
	assert.False(t, IsOpen(ws, mondayAt(12, 0)))
}

func TestIsOpenWindowBoundaries(t *testing.T) {
	ws := weeklyWith(Monday, activeDay("09:00", "18:00"))

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before opening", mondayAt(8, 59), false},
		{"exactly at start", mondayAt(9, 0), true},
		{"mid morning", mondayAt(11, 30), true},
		{"one minute before close", mondayAt(17, 59), true},
		{"exactly at end", mondayAt(18, 0), false},
		{"after close", mondayAt(20, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsOpen(ws, tc.at))
		})
	}
}

func TestIsOpenBreakWindow(t *testing.T) {
	day := activeDay("09:00", "18:00")
	day.BreakStart = strPtr("13:00")
	day.BreakEnd = strPtr("14:00")
	ws := weeklyWith(Monday, day)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"just before break", mondayAt(12, 59), true},
		{"break start", mondayAt(13, 0), false},
		{"mid break", mondayAt(13, 30), false},
		{"break end is open again", mondayAt(14, 0), true},
		{"end of day still closed", mondayAt(18, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsOpen(ws, tc.at))
		})
	}
}

func TestIsOpenInactiveDay(t *testing.T) {
	ws := weeklyWith(Monday, DaySchedule{Active: false, Start: "09:00", End: "18:00"})
	assert.False(t, IsOpen(ws, mondayAt(12, 0)))
}

func TestIsOpenOtherWeekday(t *testing.T) {
	// Monday is open 9-18 but the query lands on Tuesday (2024-01-02).
	ws := weeklyWith(Monday, activeDay("09:00", "18:00"))
	tuesdayNoon := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsOpen(ws, tuesdayNoon))
}

func TestIsOpenLegacyMalformedTimes(t *testing.T) {
	// Partially formed legacy records must evaluate closed, not crash.
	cases := []DaySchedule{
		{Active: true, Start: "", End: "18:00"},
		{Active: true, Start: "09:00", End: ""},
		{Active: true, Start: "9am", End: "18:00"},
		{Active: true, Start: "09:00", End: "25:99"},
	}

	for _, day := range cases {
		assert.False(t, IsOpen(weeklyWith(Monday, day), mondayAt(12, 0)))
	}
}

func TestIsOpenMissingDayEntry(t *testing.T) {
	ws := &WeeklySchedule{
		BarberID: "barber-1",
		Days:     map[Weekday]DaySchedule{},
	}
	assert.False(t, IsOpen(ws, mondayAt(12, 0)))
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01..07 runs Monday through Sunday.
	for i, want := range DayNames {
		day := time.Date(2024, 1, 1+i, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, want, WeekdayOf(day))
	}
}
