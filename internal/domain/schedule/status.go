package schedule

import (
	"strconv"
	"strings"
	"time"
)

// IsOpen decides whether the business is open at the given instant.
//
// Precedence:
//  1. no schedule at all → closed
//  2. manual override → wins over every day rule
//  3. today's day schedule, window [start, end), minus [breakStart, breakEnd)
//
// Pure and deterministic; callers pick "now" in the business timezone.
func IsOpen(ws *WeeklySchedule, now time.Time) bool {
	if ws == nil {
		return false
	}

	if ws.ManualOverride != nil {
		switch *ws.ManualOverride {
		case OverrideOpen:
			return true
		case OverrideClosed:
			return false
		}
	}

	day := ws.Day(WeekdayOf(now))
	if !day.Active {
		return false
	}

	// Legacy rows may carry empty or malformed times. Those days never
	// passed validation, so treat them as closed instead of guessing.
	startMin, ok := minutesOfDay(day.Start)
	if !ok {
		return false
	}
	endMin, ok := minutesOfDay(day.End)
	if !ok {
		return false
	}

	nowMin := now.Hour()*60 + now.Minute()

	// End is exclusive: at exactly closing time the shop is closed.
	if nowMin < startMin || nowMin >= endMin {
		return false
	}

	if day.BreakStart != nil && day.BreakEnd != nil {
		bs, okS := minutesOfDay(*day.BreakStart)
		be, okE := minutesOfDay(*day.BreakEnd)
		if okS && okE && nowMin >= bs && nowMin < be {
			return false
		}
	}

	return true
}

// minutesOfDay converts "HH:MM" to minutes since midnight.
func minutesOfDay(hm string) (int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}
