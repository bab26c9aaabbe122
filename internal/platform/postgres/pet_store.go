package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/platform/logger"
	"github.com/pepshop/pepshop-api/internal/store"
)

// PetStore implements store.PetStore on PostgreSQL. Reads join the owning
// client; the password hash is never selected on joined reads.
type PetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPetStore creates a PostgreSQL implementation of store.PetStore.
func NewPetStore(db store.DBTX, log *slog.Logger) *PetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PetStore{
		db:     db,
		logger: log.With(slog.String("component", "pet_store")),
	}
}

var _ store.PetStore = (*PetStore)(nil)

const petSelect = `
	SELECT p.id, p.name, p.species, p.breed, p.age, p.client_id, p.created_at, p.updated_at,
	       c.id, c.name, c.email, c.phone, c.created_at, c.updated_at
	FROM pets p
	JOIN clients c ON c.id = p.client_id
`

func scanPet(row interface{ Scan(dest ...any) error }, p *domain.Pet) error {
	var owner domain.Client
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.ClientID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.Phone,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		return err
	}
	p.Owner = &owner
	return nil
}

// List implements store.PetStore.List.
func (s *PetStore) List(ctx context.Context) ([]domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, petSelect+` ORDER BY p.id`)
	if err != nil {
		log.Error("failed to list pets", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	pets := make([]domain.Pet, 0)
	for rows.Next() {
		var p domain.Pet
		if err := scanPet(rows, &p); err != nil {
			return nil, MapError(err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return pets, nil
}

// GetByID implements store.PetStore.GetByID.
func (s *PetStore) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var p domain.Pet
	if err := scanPet(s.db.QueryRowContext(ctx, petSelect+` WHERE p.id = $1`, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPetNotFound
		}
		log.Error("failed to get pet",
			slog.String("error", err.Error()),
			slog.Int64("pet_id", id))
		return nil, MapError(err)
	}
	return &p, nil
}

// Create implements store.PetStore.Create.
func (s *PetStore) Create(ctx context.Context, p *domain.Pet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO pets (name, species, breed, age, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Species, p.Breed, p.Age, p.ClientID, now, now,
	).Scan(&p.ID)
	if err != nil {
		log.Error("failed to create pet",
			slog.String("error", err.Error()),
			slog.Int64("client_id", p.ClientID))
		return MapError(err)
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	log.Info("pet created",
		slog.Int64("pet_id", p.ID),
		slog.Int64("client_id", p.ClientID))
	return nil
}

// Update implements store.PetStore.Update.
func (s *PetStore) Update(ctx context.Context, id int64, patch domain.PetPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Species != nil {
		add("species", *patch.Species)
	}
	if patch.Breed != nil {
		add("breed", *patch.Breed)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.ClientID != nil {
		add("client_id", *patch.ClientID)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE pets SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update pet",
			slog.String("error", err.Error()),
			slog.Int64("pet_id", id))
		return MapError(err)
	}
	return nil
}

// Delete implements store.PetStore.Delete.
func (s *PetStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete pet",
			slog.String("error", err.Error()),
			slog.Int64("pet_id", id))
		return 0, mapDeleteError(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}
