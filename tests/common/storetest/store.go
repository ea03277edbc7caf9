//go:build unit || e2e

// Package storetest provides an in-memory StockStore with NOWAIT row locks, so the
// purchase path can be exercised concurrently without a database.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const Backend = "memory"

type Store struct {
	mu           sync.Mutex
	items        map[inventory.Key]*inventory.Item
	reservations map[uuid.UUID]*reservation.Reservation
	locked       map[inventory.Key]bool

	// HoldFor keeps each row lock this long after it is taken, widening the race window.
	HoldFor time.Duration
}

func New() *Store {
	return &Store{
		items:        make(map[inventory.Key]*inventory.Item),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		locked:       make(map[inventory.Key]bool),
	}
}

// Seed puts a warehouse row in place. key must carry a warehouse.
func (s *Store) Seed(key inventory.Key, currentStock, reservedStock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = inventory.ReconstructItem(key, currentStock, reservedStock, 0, time.Time{})
}

func (s *Store) Item(key inventory.Key) *inventory.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key]
}

func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations[id]
}

// Reservations returns every stored reservation in creation order.
func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Backend() string {
	return Backend
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.StockTx) error) error {
	tx := &memTx{
		store:        s,
		held:         make(map[inventory.Key]bool),
		items:        make(map[inventory.Key]*inventory.Item),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
	defer tx.unlockAll()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// ReclaimExpired expires active reservations older than now. Rows locked by an open
// transaction are skipped and picked up by a later run.
func (s *Store) ReclaimExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, r := range s.reservations {
		if !r.IsStale(now) || s.locked[r.Key()] {
			continue
		}
		item, ok := s.items[r.Key()]
		if !ok {
			return n, errs.Wrapf(inventory.ErrItemNotFound, "reservation %s", id)
		}
		released, err := item.Release(r.Quantity(), false, now)
		if err != nil {
			return n, err
		}
		expired := *r
		if err := expired.Expire(now); err != nil {
			return n, err
		}
		s.items[r.Key()] = released
		s.reservations[id] = &expired
		n++
	}
	return n, nil
}

type memTx struct {
	store        *Store
	held         map[inventory.Key]bool
	items        map[inventory.Key]*inventory.Item
	reservations map[uuid.UUID]*reservation.Reservation
}

func (t *memTx) AcquireForUpdate(_ context.Context, key inventory.Key) (*inventory.Item, error) {
	s := t.store
	s.mu.Lock()
	resolved, ok := s.resolve(key)
	if !ok {
		s.mu.Unlock()
		return nil, errs.Wrapf(inventory.ErrItemNotFound, "key %s", key)
	}
	if err := t.lock(resolved); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	item := s.items[resolved]
	s.mu.Unlock()

	if s.HoldFor > 0 {
		time.Sleep(s.HoldFor)
	}
	return item, nil
}

func (t *memTx) ApplyReservation(_ context.Context, item *inventory.Item, res *reservation.Reservation) (*inventory.Item, error) {
	if !t.held[item.Key()] {
		return nil, errs.Newf("row %s is not locked by this transaction", item.Key())
	}
	updated, err := item.Reserve(res.Quantity(), res.CreatedAt())
	if err != nil {
		return nil, err
	}
	t.items[item.Key()] = updated
	t.reservations[res.ID()] = res
	return updated, nil
}

func (t *memTx) CloseReservation(_ context.Context, id uuid.UUID, to reservation.Status, now time.Time) (*reservation.Reservation, error) {
	s := t.store
	s.mu.Lock()
	stored, ok := s.reservations[id]
	if !ok {
		s.mu.Unlock()
		return nil, errs.Mark(errs.Newf("reservation %s", id), errs.ErrReservationNotFound)
	}
	if !stored.IsActive() {
		s.mu.Unlock()
		return nil, errs.Mark(errs.Newf("reservation %s is %s", id, stored.Status()), errs.ErrReservationNotActive)
	}
	if err := t.lock(stored.Key()); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	item := s.items[stored.Key()]
	s.mu.Unlock()

	closed := *stored
	var err error
	switch to {
	case reservation.StatusCommitted:
		err = closed.Commit(now)
	case reservation.StatusCancelled:
		err = closed.Cancel(now)
	default:
		err = errs.Wrapf(reservation.ErrInvalidStatus, "cannot close reservation as %s", to)
	}
	if err != nil {
		return nil, err
	}

	released, err := item.Release(closed.Quantity(), to.ReleasesCurrentStock(), now)
	if err != nil {
		return nil, err
	}
	t.items[item.Key()] = released
	t.reservations[id] = &closed
	return &closed, nil
}

// lock must be called with store.mu held.
func (t *memTx) lock(key inventory.Key) error {
	if t.held[key] {
		return nil
	}
	if t.store.locked[key] {
		return errs.Mark(errs.Newf("row %s is locked", key), inventory.ErrContention)
	}
	t.store.locked[key] = true
	t.held[key] = true
	return nil
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for k, item := range t.items {
		t.store.items[k] = item
	}
	for id, r := range t.reservations {
		t.store.reservations[id] = r
	}
}

func (t *memTx) unlockAll() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for k := range t.held {
		delete(t.store.locked, k)
	}
}

// resolve picks the warehouse row with the most available stock when key has none.
func (s *Store) resolve(key inventory.Key) (inventory.Key, bool) {
	if key.HasWarehouse() {
		_, ok := s.items[key]
		return key, ok
	}
	var (
		best  inventory.Key
		found bool
	)
	for k, item := range s.items {
		if k.ProductID != key.ProductID || k.VariantID != key.VariantID {
			continue
		}
		if !found || item.Available() > s.items[best].Available() ||
			(item.Available() == s.items[best].Available() && k.WarehouseID < best.WarehouseID) {
			best, found = k, true
		}
	}
	return best, found
}
