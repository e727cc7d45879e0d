package models

import "time"

// Appointment statuses. Booking itself is not implemented yet; the types
// exist so the schema is ready when the flow lands.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	UserID   string `gorm:"size:64;index" json:"user_id"`
	BarberID string `gorm:"size:64;index" json:"barber_id"`

	Date time.Time `json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string `gorm:"size:10" json:"payment_method"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	PositionInQueue int `json:"position_in_queue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CascadeOffer models re-offering a cancelled slot to a later appointment.
// Declared ahead of the booking flow, same as Appointment.
type CascadeOffer struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	OriginalAppointmentID  string `gorm:"size:64" json:"original_appointment_id"`
	OfferedToAppointmentID string `gorm:"size:64" json:"offered_to_appointment_id"`

	NewTime string `gorm:"size:5" json:"new_time"`
	Status  string `gorm:"size:10;default:'pending'" json:"status"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
