package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pepshop/pepshop-api/internal/config"
	"github.com/pepshop/pepshop-api/internal/platform/postgres"
	"github.com/pepshop/pepshop-api/internal/service"
	"github.com/pepshop/pepshop-api/internal/service/auth"
)

// application holds the wired dependency graph. Every service receives its
// store through its constructor; nothing is package-level.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	productService     *service.ProductService
	clientService      *service.ClientService
	petService         *service.PetService
	appointmentService *service.AppointmentService
	orderService       *service.OrderService
	authService        *service.AuthService
}

// newApplication wires stores, auth primitives and services on top of the
// open database handle.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher()

	productStore := postgres.NewProductStore(db, log)
	clientStore := postgres.NewClientStore(db, log)
	petStore := postgres.NewPetStore(db, log)
	appointmentStore := postgres.NewAppointmentStore(db, log)
	orderStore := postgres.NewOrderStore(db, log)

	return &application{
		config:             cfg,
		logger:             log,
		db:                 db,
		productService:     service.NewProductService(productStore),
		clientService:      service.NewClientService(clientStore, hasher),
		petService:         service.NewPetService(petStore),
		appointmentService: service.NewAppointmentService(appointmentStore),
		orderService:       service.NewOrderService(orderStore),
		authService:        service.NewAuthService(clientStore, hasher, jwtService),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
