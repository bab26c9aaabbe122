package api

import (
	"time"

	"github.com/pepshop/pepshop-api/internal/domain"
)

// Request payloads for the CRUD endpoints. Create requests validate
// fail-fast, reporting only the first broken rule; update requests use
// pointer fields so that absent keys leave the stored value untouched.

// CreateProductRequest is the POST /products payload.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// Validate checks the payload's rules, first failure wins.
func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return domain.NewValidationError("name", "is required and must be a non-empty string")
	}
	if r.Price == nil {
		return domain.NewValidationError("price", "is required")
	}
	if *r.Price < 0 {
		return domain.NewValidationError("price", "must be a number greater than or equal to 0")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return domain.NewValidationError("stock", "must be an integer greater than or equal to 0")
	}
	return nil
}

// ToDomain converts the payload to a domain Product, defaulting absent
// optional numerics to 0.
func (r *CreateProductRequest) ToDomain() *domain.Product {
	p := &domain.Product{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// UpdateProductRequest is the PUT /products/{id} payload.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// ToPatch converts the payload to a store patch.
func (r *UpdateProductRequest) ToPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// CreateClientRequest is the POST /clients payload. The password travels
// only as far as the service, which hashes it before persistence.
type CreateClientRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
}

// Validate checks the payload's rules, first failure wins.
func (r *CreateClientRequest) Validate() error {
	if r.Name == "" {
		return domain.NewValidationError("name", "is required and must be a non-empty string")
	}
	if r.Email != nil && *r.Email == "" {
		return domain.NewValidationError("email", "must be a non-empty string when provided")
	}
	if r.Password == "" {
		return domain.NewValidationError("password", "is required")
	}
	return nil
}

// ToDomain converts the payload to a domain Client.
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

// UpdateClientRequest is the PUT /clients/{id} payload.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// ToPatch converts the payload to a store patch.
func (r *UpdateClientRequest) ToPatch() domain.ClientPatch {
	return domain.ClientPatch{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

// CreatePetRequest is the POST /pets payload.
type CreatePetRequest struct {
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    *string `json:"breed"`
	Age      *int    `json:"age"`
	ClientID *int64  `json:"client_id"`
}

// Validate checks the payload's rules, first failure wins.
func (r *CreatePetRequest) Validate() error {
	if r.Name == "" {
		return domain.NewValidationError("name", "is required and must be a non-empty string")
	}
	if r.Species == "" {
		return domain.NewValidationError("species", "is required and must be a non-empty string")
	}
	if r.Age != nil && *r.Age < 0 {
		return domain.NewValidationError("age", "must be an integer greater than or equal to 0")
	}
	if r.ClientID != nil && *r.ClientID <= 0 {
		return domain.NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}

// ToDomain converts the payload to a domain Pet.
func (r *CreatePetRequest) ToDomain() *domain.Pet {
	p := &domain.Pet{
		Name:    r.Name,
		Species: r.Species,
		Breed:   r.Breed,
		Age:     r.Age,
	}
	if r.ClientID != nil {
		p.ClientID = *r.ClientID
	}
	return p
}

// UpdatePetRequest is the PUT /pets/{id} payload.
type UpdatePetRequest struct {
	Name     *string `json:"name"`
	Species  *string `json:"species"`
	Breed    *string `json:"breed"`
	Age      *int    `json:"age"`
	ClientID *int64  `json:"client_id"`
}

// ToPatch converts the payload to a store patch.
func (r *UpdatePetRequest) ToPatch() domain.PetPatch {
	return domain.PetPatch{
		Name:     r.Name,
		Species:  r.Species,
		Breed:    r.Breed,
		Age:      r.Age,
		ClientID: r.ClientID,
	}
}

// CreateAppointmentRequest is the POST /appointments payload.
type CreateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Reason      *string    `json:"reason"`
	Status      *string    `json:"status"`
	ClientID    *int64     `json:"client_id"`
}

// Validate checks the payload's rules, first failure wins.
func (r *CreateAppointmentRequest) Validate() error {
	if r.ScheduledAt == nil || r.ScheduledAt.IsZero() {
		return domain.NewValidationError("scheduled_at", "is required")
	}
	if r.ClientID != nil && *r.ClientID <= 0 {
		return domain.NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}

// ToDomain converts the payload to a domain Appointment. The status
// default is applied by the service.
func (r *CreateAppointmentRequest) ToDomain() *domain.Appointment {
	a := &domain.Appointment{
		ScheduledAt: *r.ScheduledAt,
		Reason:      r.Reason,
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.ClientID != nil {
		a.ClientID = *r.ClientID
	}
	return a
}

// UpdateAppointmentRequest is the PUT /appointments/{id} payload.
type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Reason      *string    `json:"reason"`
	Status      *string    `json:"status"`
	ClientID    *int64     `json:"client_id"`
}

// ToPatch converts the payload to a store patch.
func (r *UpdateAppointmentRequest) ToPatch() domain.AppointmentPatch {
	return domain.AppointmentPatch{
		ScheduledAt: r.ScheduledAt,
		Reason:      r.Reason,
		Status:      r.Status,
		ClientID:    r.ClientID,
	}
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	Total    *float64 `json:"total"`
	Status   *string  `json:"status"`
	ClientID *int64   `json:"client_id"`
}

// Validate checks the payload's rules, first failure wins.
func (r *CreateOrderRequest) Validate() error {
	if r.Total == nil {
		return domain.NewValidationError("total", "is required")
	}
	if *r.Total < 0 {
		return domain.NewValidationError("total", "must be a number greater than or equal to 0")
	}
	if r.ClientID != nil && *r.ClientID <= 0 {
		return domain.NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}

// ToDomain converts the payload to a domain Order. The status default is
// applied by the service.
func (r *CreateOrderRequest) ToDomain() *domain.Order {
	o := &domain.Order{Total: *r.Total}
	if r.Status != nil {
		o.Status = *r.Status
	}
	if r.ClientID != nil {
		o.ClientID = *r.ClientID
	}
	return o
}

// UpdateOrderRequest is the PUT /orders/{id} payload.
type UpdateOrderRequest struct {
	Total    *float64 `json:"total"`
	Status   *string  `json:"status"`
	ClientID *int64   `json:"client_id"`
}

// ToPatch converts the payload to a store patch.
func (r *UpdateOrderRequest) ToPatch() domain.OrderPatch {
	return domain.OrderPatch{
		Total:    r.Total,
		Status:   r.Status,
		ClientID: r.ClientID,
	}
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the successful login envelope. Unlike the generic
// success envelope, token and user ride at the top level.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}
