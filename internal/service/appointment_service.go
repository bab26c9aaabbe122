package service

import (
	"context"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// AppointmentService implements appointment CRUD on top of an
// AppointmentStore.
type AppointmentService struct {
	appointments store.AppointmentStore
}

// NewAppointmentService creates an AppointmentService with the given store.
func NewAppointmentService(appointments store.AppointmentStore) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

// List returns all appointments with their clients loaded.
func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// GetByID returns one appointment or store.ErrAppointmentNotFound.
func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Create validates and persists a new appointment, defaulting the status
// to "pending" when absent.
func (s *AppointmentService) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if a.Status == "" {
		a.Status = domain.DefaultAppointmentStatus
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies a partial patch, then re-reads and returns the current
// full row.
func (s *AppointmentService) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	if patch.ScheduledAt != nil && patch.ScheduledAt.IsZero() {
		return nil, domain.NewValidationError("scheduled_at", "must be a valid date/time")
	}
	if patch.Status != nil && *patch.Status == "" {
		return nil, domain.NewValidationError("status", "must be a non-empty string when provided")
	}
	if patch.ClientID != nil && *patch.ClientID <= 0 {
		return nil, domain.NewValidationError("client_id", "must be a valid client id")
	}

	if err := s.appointments.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, id)
}

// Delete removes an appointment by ID and returns the removed-row count.
func (s *AppointmentService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.appointments.Delete(ctx, id)
}
