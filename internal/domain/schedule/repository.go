package schedule

import "context"

// Repository is the persistence contract for weekly schedules. One document
// per barber, keyed by barberId.
type Repository interface {
	// GetSchedule returns the stored schedule, or (nil, nil) when the
	// barber never saved one. Absence is a normal outcome, not an error.
	GetSchedule(ctx context.Context, barberID string) (*WeeklySchedule, error)

	// SaveSchedule upserts the whole document. Days identical to what is
	// already stored keep their per-day timestamp; changed days get a
	// fresh one. The document-level timestamp is always refreshed.
	SaveSchedule(ctx context.Context, ws *WeeklySchedule) error

	// UpdateManualOverride merge-writes only the override and the
	// document timestamp; day schedules are untouched. nil clears it.
	UpdateManualOverride(ctx context.Context, barberID string, override *ManualOverride) error

	// PatchDay merge-writes a single day following the patch's per-field
	// instructions, creating the document if needed.
	PatchDay(ctx context.Context, barberID string, day Weekday, patch DayPatch) error
}
