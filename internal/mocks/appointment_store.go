package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MockAppointmentStore implements store.AppointmentStore for testing.
type MockAppointmentStore struct {
	ListFn    func(ctx context.Context) ([]domain.Appointment, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Appointment, error)
	CreateFn  func(ctx context.Context, appointment *domain.Appointment) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.AppointmentPatch) error
	DeleteFn  func(ctx context.Context, id int64) (int64, error)

	Appointments map[int64]*domain.Appointment
	NextID       int64
}

// NewMockAppointmentStore creates a mock store with an empty in-memory table.
func NewMockAppointmentStore() *MockAppointmentStore {
	return &MockAppointmentStore{Appointments: make(map[int64]*domain.Appointment), NextID: 1}
}

var _ store.AppointmentStore = (*MockAppointmentStore)(nil)

func (m *MockAppointmentStore) List(ctx context.Context) ([]domain.Appointment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	out := make([]domain.Appointment, 0, len(m.Appointments))
	for _, a := range m.Appointments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	a, ok := m.Appointments[id]
	if !ok {
		return nil, store.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, appointment)
	}

	appointment.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	cp := *appointment
	m.Appointments[appointment.ID] = &cp
	return nil
}

func (m *MockAppointmentStore) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	a, ok := m.Appointments[id]
	if !ok {
		return nil
	}
	if patch.ScheduledAt != nil {
		a.ScheduledAt = *patch.ScheduledAt
	}
	if patch.Reason != nil {
		a.Reason = patch.Reason
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.ClientID != nil {
		a.ClientID = *patch.ClientID
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Appointments[id]; !ok {
		return 0, nil
	}
	delete(m.Appointments, id)
	return 1, nil
}
