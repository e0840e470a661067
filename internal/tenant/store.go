package tenant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("tenant: church not found")

// Store is the lookup contract used by the webhook layer.
// One read per turn; implementations must be safe for concurrent use.
type Store interface {
	FindByID(ctx context.Context, id string) (Church, error)
}
