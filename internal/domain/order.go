package domain

import "time"

// DefaultOrderStatus is assigned when a new order carries no explicit status.
const DefaultOrderStatus = "pending"

// Order represents a purchase placed by a Client. The total is set by the
// caller; there is no line-item entity it could be derived from.
type Order struct {
	ID       int64   `json:"id"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
	ClientID int64   `json:"client_id"`

	// Client is the eagerly-loaded purchasing Client, populated on reads.
	Client *Client `json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderPatch describes a partial update to an Order.
type OrderPatch struct {
	Total    *float64
	Status   *string
	ClientID *int64
}

// Validate checks the Order's invariants.
func (o *Order) Validate() error {
	if o.Total < 0 {
		return NewValidationError("total", "must be a number greater than or equal to 0")
	}
	if o.ClientID <= 0 {
		return NewValidationError("client_id", "must be a valid client id")
	}
	return nil
}
