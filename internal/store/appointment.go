package store

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// AppointmentStore defines the interface for appointment persistence.
// Reads eagerly join the booking Client into Appointment.Client.
type AppointmentStore interface {
	// List returns all appointments with their clients loaded.
	List(ctx context.Context) ([]domain.Appointment, error)

	// GetByID retrieves an appointment by its ID with its client loaded.
	// Returns ErrAppointmentNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)

	// Create inserts a new appointment and fills in its server-assigned ID
	// and timestamps. Returns ErrInvalidReference if the client does not
	// exist.
	Create(ctx context.Context, appointment *domain.Appointment) error

	// Update applies the non-nil fields of the patch.
	Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error

	// Delete removes the appointment by ID and returns the number of rows
	// removed.
	Delete(ctx context.Context, id int64) (int64, error)
}
