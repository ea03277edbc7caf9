package reservation

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be between 1 and the configured maximum")

type Quantity struct {
	value int
}

// NewQuantity rejects non-positive values and, when max > 0, values above max.
func NewQuantity(value, max int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	if max > 0 && value > max {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Int() int {
	return q.value
}
