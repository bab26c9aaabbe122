package domain

import "time"

// Client represents a registered customer of the shop. Clients are the
// aggregation root: pets, appointments and orders all reference a Client.
type Client struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`

	// Password holds the plaintext password only transiently, between
	// decoding a create request and hashing. It is never persisted and
	// never serialized.
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientPatch describes a partial update to a Client.
// A non-nil Password is hashed by the service before being applied.
type ClientPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// Validate checks the Client's invariants.
// Email uniqueness is not checked here; it is enforced by the store's
// unique constraint.
func (c *Client) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "is required and must be a non-empty string")
	}
	if c.Email != nil && *c.Email == "" {
		return NewValidationError("email", "must be a non-empty string when provided")
	}
	if c.Password == "" && c.HashedPassword == "" {
		return NewValidationError("password", "is required")
	}
	return nil
}
