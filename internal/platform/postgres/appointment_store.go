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

// AppointmentStore implements store.AppointmentStore on PostgreSQL.
type AppointmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAppointmentStore creates a PostgreSQL implementation of
// store.AppointmentStore.
func NewAppointmentStore(db store.DBTX, log *slog.Logger) *AppointmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentStore{
		db:     db,
		logger: log.With(slog.String("component", "appointment_store")),
	}
}

var _ store.AppointmentStore = (*AppointmentStore)(nil)

const appointmentSelect = `
	SELECT a.id, a.scheduled_at, a.reason, a.status, a.client_id, a.created_at, a.updated_at,
	       c.id, c.name, c.email, c.phone, c.created_at, c.updated_at
	FROM appointments a
	JOIN clients c ON c.id = a.client_id
`

func scanAppointment(row interface{ Scan(dest ...any) error }, a *domain.Appointment) error {
	var client domain.Client
	err := row.Scan(
		&a.ID,
		&a.ScheduledAt,
		&a.Reason,
		&a.Status,
		&a.ClientID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return err
	}
	a.Client = &client
	return nil
}

// List implements store.AppointmentStore.List.
func (s *AppointmentStore) List(ctx context.Context) ([]domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, appointmentSelect+` ORDER BY a.id`)
	if err != nil {
		log.Error("failed to list appointments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, MapError(err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return appointments, nil
}

// GetByID implements store.AppointmentStore.GetByID.
func (s *AppointmentStore) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var a domain.Appointment
	err := scanAppointment(s.db.QueryRowContext(ctx, appointmentSelect+` WHERE a.id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAppointmentNotFound
		}
		log.Error("failed to get appointment",
			slog.String("error", err.Error()),
			slog.Int64("appointment_id", id))
		return nil, MapError(err)
	}
	return &a, nil
}

// Create implements store.AppointmentStore.Create.
func (s *AppointmentStore) Create(ctx context.Context, a *domain.Appointment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO appointments (scheduled_at, reason, status, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		a.ScheduledAt, a.Reason, a.Status, a.ClientID, now, now,
	).Scan(&a.ID)
	if err != nil {
		log.Error("failed to create appointment",
			slog.String("error", err.Error()),
			slog.Int64("client_id", a.ClientID))
		return MapError(err)
	}

	a.CreatedAt = now
	a.UpdatedAt = now
	log.Info("appointment created",
		slog.Int64("appointment_id", a.ID),
		slog.Int64("client_id", a.ClientID))
	return nil
}

// Update implements store.AppointmentStore.Update.
func (s *AppointmentStore) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.ScheduledAt != nil {
		add("scheduled_at", *patch.ScheduledAt)
	}
	if patch.Reason != nil {
		add("reason", *patch.Reason)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ClientID != nil {
		add("client_id", *patch.ClientID)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE appointments SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update appointment",
			slog.String("error", err.Error()),
			slog.Int64("appointment_id", id))
		return MapError(err)
	}
	return nil
}

// Delete implements store.AppointmentStore.Delete.
func (s *AppointmentStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete appointment",
			slog.String("error", err.Error()),
			slog.Int64("appointment_id", id))
		return 0, mapDeleteError(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}
