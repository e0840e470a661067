package tenant

import "time"

// Church is one tenant of the platform. Every inbound call is scoped to
// exactly one church; callers reference it by an opaque ID in the webhook URL.
//
// Multi-tenant invariant: nothing personalized may be spoken to a caller
// before the church is resolved and confirmed active.
type Church struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	Status Status `json:"status" db:"status"`

	// Greeting optionally overrides the platform default on inbound calls.
	Greeting string `json:"greeting,omitempty" db:"greeting"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Callable reports whether the church may receive assistant calls.
func (c Church) Callable() bool {
	return c.Status == StatusActive
}
