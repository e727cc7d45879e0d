package schedule

import "regexp"

// ===============================
// Validation
// ===============================

var timeRE = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	msgInvalidTime     = "invalid time format, expected HH:MM"
	msgEndBeforeStart  = "end time must be after start time"
	msgBreakOutOfRange = "break must fall within working hours"
	msgInvalidOverride = "manual override must be open, closed or null"
)

// ValidationErrors maps a dotted field path ("monday.end") to a message so
// an editor can show each error inline next to the offending input.
type ValidationErrors map[string]string

func (v ValidationErrors) add(path, msg string) {
	if _, taken := v[path]; !taken {
		v[path] = msg
	}
}

// Valid reports whether no rule was violated.
func (v ValidationErrors) Valid() bool { return len(v) == 0 }

// Validate checks a candidate weekly schedule against the editing rules.
// It always returns a structured result and never panics, whatever shape
// the input is in. An empty result means the schedule may be persisted.
func Validate(ws *WeeklySchedule) ValidationErrors {
	errs := ValidationErrors{}
	if ws == nil {
		errs.add("schedule", "schedule is required")
		return errs
	}

	for _, name := range DayNames {
		validateDay(name, ws.Day(name), errs)
	}

	if ws.ManualOverride != nil {
		switch *ws.ManualOverride {
		case OverrideOpen, OverrideClosed:
		default:
			errs.add("manualOverride", msgInvalidOverride)
		}
	}

	return errs
}

// ValidateDay runs the per-day rules in isolation. Single-day updates go
// through the same invariants as a full save.
func ValidateDay(name Weekday, d DaySchedule) ValidationErrors {
	errs := ValidationErrors{}
	validateDay(name, d, errs)
	return errs
}

func validateDay(name Weekday, d DaySchedule, errs ValidationErrors) {
	path := func(field string) string { return string(name) + "." + field }
	before := len(errs)

	if !timeRE.MatchString(d.Start) {
		errs.add(path("start"), msgInvalidTime)
	}
	if !timeRE.MatchString(d.End) {
		errs.add(path("end"), msgInvalidTime)
	}
	if d.BreakStart != nil && !timeRE.MatchString(*d.BreakStart) {
		errs.add(path("breakStart"), msgInvalidTime)
	}
	if d.BreakEnd != nil && !timeRE.MatchString(*d.BreakEnd) {
		errs.add(path("breakEnd"), msgInvalidTime)
	}
	if (d.BreakStart == nil) != (d.BreakEnd == nil) {
		errs.add(path("breakEnd"), msgBreakOutOfRange)
	}

	// Inactive days keep whatever times they had: they are ignored by the
	// evaluator, so no ordering constraints apply. Ordering checks also
	// need well-formed times for this day.
	if !d.Active || len(errs) > before {
		return
	}

	start, _ := minutesOfDay(d.Start)
	end, _ := minutesOfDay(d.End)

	if end <= start {
		errs.add(path("end"), msgEndBeforeStart)
		return
	}

	if d.BreakStart != nil && d.BreakEnd != nil {
		bs, _ := minutesOfDay(*d.BreakStart)
		be, _ := minutesOfDay(*d.BreakEnd)

		if bs < start || be <= bs || be > end {
			errs.add(path("breakEnd"), msgBreakOutOfRange)
		}
	}
}
