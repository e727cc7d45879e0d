package timezone

import "time"

// The shop runs on Spanish local time unless configured otherwise.
const DefaultTimezone = "Europe/Madrid"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// NowIn is the instant "open now" is evaluated against: wall-clock time in
// the business timezone.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
