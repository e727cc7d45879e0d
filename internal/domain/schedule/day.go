package schedule

import "time"

// ===============================
// Weekday
// ===============================

// Weekday is the locale-independent storage key for one day of the week.
// Day schedules are keyed by name, never by a numeric index.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// DayNames lists every weekday in calendar order. Iteration over a weekly
// schedule always goes through this slice so output stays deterministic.
var DayNames = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// WeekdayOf maps a calendar day-of-week to its storage key.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseWeekday validates a weekday name coming from a route parameter.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range DayNames {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// ===============================
// Manual override
// ===============================

type ManualOverride string

const (
	OverrideOpen   ManualOverride = "open"
	OverrideClosed ManualOverride = "closed"
)

// ===============================
// Schedule aggregate
// ===============================

// DaySchedule is one weekday's operating rule. Break fields are either both
// set or both nil; a nil pointer means the field is absent from storage.
type DaySchedule struct {
	Active     bool    `json:"active"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// WeeklySchedule is the per-business document: seven day schedules plus the
// manual override and write metadata.
type WeeklySchedule struct {
	BarberID       string                  `json:"barberId"`
	Days           map[Weekday]DaySchedule `json:"days"`
	ManualOverride *ManualOverride         `json:"manualOverride"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

const (
	DefaultStart = "09:00"
	DefaultEnd   = "18:00"
)

// DefaultDay is the schedule a day falls back to when nothing was ever
// stored for it: inactive, standard shop hours, no break.
func DefaultDay() DaySchedule {
	return DaySchedule{
		Active: false,
		Start:  DefaultStart,
		End:    DefaultEnd,
	}
}

// DefaultWeekly builds the in-memory schedule used before a barber has saved
// anything. Pure, no I/O.
func DefaultWeekly(barberID string) *WeeklySchedule {
	days := make(map[Weekday]DaySchedule, len(DayNames))
	for _, d := range DayNames {
		days[d] = DefaultDay()
	}
	return &WeeklySchedule{
		BarberID: barberID,
		Days:     days,
	}
}

// Day returns the schedule stored for d, falling back to the default when a
// legacy document is missing that day.
func (ws *WeeklySchedule) Day(d Weekday) DaySchedule {
	if ds, ok := ws.Days[d]; ok {
		return ds
	}
	return DefaultDay()
}

// Equal compares the persisted fields of two day schedules. The per-day
// timestamp is metadata and never part of the comparison.
func (d DaySchedule) Equal(other DaySchedule) bool {
	if d.Active != other.Active || d.Start != other.Start || d.End != other.End {
		return false
	}
	if !strPtrEqual(d.BreakStart, other.BreakStart) {
		return false
	}
	return strPtrEqual(d.BreakEnd, other.BreakEnd)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
