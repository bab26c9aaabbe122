package domain

import "time"

// Pet represents an animal owned by a Client.
type Pet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    *string `json:"breed"`
	Age      *int    `json:"age"`
	ClientID int64   `json:"client_id"`

	// Owner is the eagerly-loaded owning Client, populated on reads.
	Owner *Client `json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetPatch describes a partial update to a Pet.
type PetPatch struct {
	Name     *string
	Species  *string
	Breed    *string
	Age      *int
	ClientID *int64
}

// Validate checks the Pet's invariants. The owner reference is only
// checked for shape here; existence is enforced by the store's foreign key.
func (p *Pet) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required and must be a non-empty string")
	}
	if p.Species == "" {
		return NewValidationError("species", "is required and must be a non-empty string")
	}
	if p.Age != nil && *p.Age < 0 {
		return NewValidationError("age", "must be an integer greater than or equal to 0")
	}
	if p.ClientID <= 0 {
		return NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}
