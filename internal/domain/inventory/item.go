package inventory

import "time"

type Item struct {
	key           Key
	currentStock  int
	reservedStock int
	version       int64
	updatedAt     time.Time
}

func ReconstructItem(key Key, currentStock, reservedStock int, version int64, updatedAt time.Time) *Item {
	return &Item{
		key:           key,
		currentStock:  currentStock,
		reservedStock: reservedStock,
		version:       version,
		updatedAt:     updatedAt,
	}
}

func (i *Item) Key() Key             { return i.key }
func (i *Item) CurrentStock() int    { return i.currentStock }
func (i *Item) ReservedStock() int   { return i.reservedStock }
func (i *Item) Version() int64       { return i.version }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) Available() int {
	return i.currentStock - i.reservedStock
}

// CheckAvailability must be called on a row read under the lock or at the version
// that will be compared on write.
func (i *Item) CheckAvailability(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	available := i.Available()
	if available <= 0 {
		return ErrOutOfStock
	}
	if available < quantity {
		return &ShortageError{Available: available, Requested: quantity}
	}
	return nil
}

// Reserve returns the item as it looks after holding quantity units.
func (i *Item) Reserve(quantity int, now time.Time) (*Item, error) {
	if err := i.CheckAvailability(quantity); err != nil {
		return nil, err
	}
	next := *i
	next.reservedStock += quantity
	next.version++
	next.updatedAt = now
	return &next, nil
}

// Release returns held units to available stock. When consume is true the units
// leave current stock as well (the reservation was fulfilled).
func (i *Item) Release(quantity int, consume bool, now time.Time) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > i.reservedStock {
		return nil, ErrStockInvariant
	}
	next := *i
	next.reservedStock -= quantity
	if consume {
		next.currentStock -= quantity
	}
	next.version++
	next.updatedAt = now
	return &next, nil
}
