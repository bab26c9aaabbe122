package domain

import "time"

// Product represents an item sold by the shop.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPatch describes a partial update to a Product.
// Only non-nil fields are applied; absent fields keep their stored value.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// Validate checks the Product's invariants.
// Returns the first failing rule as a ValidationError.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required and must be a non-empty string")
	}
	if p.Price < 0 {
		return NewValidationError("price", "must be a number greater than or equal to 0")
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "must be an integer greater than or equal to 0")
	}
	return nil
}
