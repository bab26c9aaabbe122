package domain

import "time"

// DefaultAppointmentStatus is assigned when a new appointment carries no
// explicit status. Statuses are an open string set; nothing beyond the
// default is enforced.
const DefaultAppointmentStatus = "pending"

// Appointment represents a scheduled visit (a "turno") booked by a Client.
type Appointment struct {
	ID          int64     `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Reason      *string   `json:"reason"`
	Status      string    `json:"status"`
	ClientID    int64     `json:"client_id"`

	// Client is the eagerly-loaded booking Client, populated on reads.
	Client *Client `json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentPatch describes a partial update to an Appointment.
type AppointmentPatch struct {
	ScheduledAt *time.Time
	Reason      *string
	Status      *string
	ClientID    *int64
}

// Validate checks the Appointment's invariants.
func (a *Appointment) Validate() error {
	if a.ScheduledAt.IsZero() {
		return NewValidationError("scheduled_at", "is required")
	}
	if a.ClientID <= 0 {
		return NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}
