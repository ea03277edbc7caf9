package reservation

import (
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultTTL = 15 * time.Minute

type Factory struct {
	Clock clock.Clock
	TTL   time.Duration
}

func NewFactory(clock clock.Clock, ttl time.Duration) *Factory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Factory{
		Clock: clock,
		TTL:   ttl,
	}
}

// NewActive builds an active reservation against a concrete warehouse row.
func (f *Factory) NewActive(key inventory.Key, userID string, quantity Quantity, sessionID string) (*Reservation, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if quantity.Int() <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := f.Clock.Now()
	return &Reservation{
		id:        uuid.New(),
		key:       key,
		userID:    userID,
		quantity:  quantity,
		status:    StatusActive,
		sessionID: sessionID,
		createdAt: now,
		expiresAt: now.Add(f.TTL),
		updatedAt: now,
	}, nil
}
