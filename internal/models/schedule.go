package models

import "time"

// Schedule is the document-level row of a barber's weekly schedule: the
// manual override and the last-write timestamp. The seven day rules live in
// ScheduleDay rows keyed by the same barber id.
type Schedule struct {
	BarberID string `gorm:"primaryKey;size:64" json:"barber_id"`

	// "open", "closed" or NULL (no override).
	ManualOverride *string `gorm:"size:10" json:"manual_override"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleDay is one weekday's operating rule. Break columns are nullable:
// NULL means the field is absent, never an empty string.
type ScheduleDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID string `gorm:"size:64;not null;uniqueIndex:idx_schedule_day" json:"barber_id"`
	Day      string `gorm:"size:10;not null;uniqueIndex:idx_schedule_day" json:"day"`

	Active     bool    `json:"active"`
	StartTime  string  `gorm:"size:5" json:"start_time"`
	EndTime    string  `gorm:"size:5" json:"end_time"`
	BreakStart *string `gorm:"size:5" json:"break_start"`
	BreakEnd   *string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
