package reservation

import (
	"errors"
	"time"

	"stock-reservation/internal/domain/inventory"

	"github.com/google/uuid"
)

var (
	ErrNotActive     = errors.New("reservation is not active")
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrMissingUser   = errors.New("reservation requires a user")
)

type Reservation struct {
	id        uuid.UUID
	key       inventory.Key
	userID    string
	quantity  Quantity
	status    Status
	sessionID string
	createdAt time.Time
	expiresAt time.Time
	updatedAt time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	key inventory.Key,
	userID string,
	quantity int,
	status Status,
	sessionID string,
	createdAt, expiresAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		key:       key,
		userID:    userID,
		quantity:  Quantity{value: quantity},
		status:    status,
		sessionID: sessionID,
		createdAt: createdAt,
		expiresAt: expiresAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// IsStale is an active reservation whose hold has run out but has not been reclaimed yet.
func (r *Reservation) IsStale(now time.Time) bool {
	return r.IsActive() && r.expiresAt.Before(now)
}

func (r *Reservation) Commit(now time.Time) error {
	return r.transition(StatusCommitted, now)
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

func (r *Reservation) Expire(now time.Time) error {
	return r.transition(StatusExpired, now)
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if !to.IsTerminal() {
		return ErrInvalidStatus
	}
	if !r.IsActive() {
		return ErrNotActive
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Key() inventory.Key   { return r.key }
func (r *Reservation) UserID() string       { return r.userID }
func (r *Reservation) Quantity() int        { return r.quantity.Int() }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) SessionID() string    { return r.sessionID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
