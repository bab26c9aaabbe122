package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MockPetStore implements store.PetStore for testing.
type MockPetStore struct {
	ListFn    func(ctx context.Context) ([]domain.Pet, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Pet, error)
	CreateFn  func(ctx context.Context, pet *domain.Pet) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.PetPatch) error
	DeleteFn  func(ctx context.Context, id int64) (int64, error)

	Pets   map[int64]*domain.Pet
	NextID int64
}

// NewMockPetStore creates a mock store with an empty in-memory table.
func NewMockPetStore() *MockPetStore {
	return &MockPetStore{Pets: make(map[int64]*domain.Pet), NextID: 1}
}

var _ store.PetStore = (*MockPetStore)(nil)

func (m *MockPetStore) List(ctx context.Context) ([]domain.Pet, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	out := make([]domain.Pet, 0, len(m.Pets))
	for _, p := range m.Pets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockPetStore) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	p, ok := m.Pets[id]
	if !ok {
		return nil, store.ErrPetNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pet)
	}

	pet.ID = m.NextID
	m.NextID++
	now := time.Now().UTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	cp := *pet
	m.Pets[pet.ID] = &cp
	return nil
}

func (m *MockPetStore) Update(ctx context.Context, id int64, patch domain.PetPatch) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	p, ok := m.Pets[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Species != nil {
		p.Species = *patch.Species
	}
	if patch.Breed != nil {
		p.Breed = patch.Breed
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.ClientID != nil {
		p.ClientID = *patch.ClientID
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MockPetStore) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Pets[id]; !ok {
		return 0, nil
	}
	delete(m.Pets, id)
	return 1, nil
}
