package inventory

import "strings"

// Key identifies one stock-keeping row. VariantID is empty for products without variants;
// WarehouseID is empty when the caller lets the store choose.
type Key struct {
	ProductID   string
	VariantID   string
	WarehouseID string
}

// LockKey is productId[:variantId]; the warehouse is deliberately not part of it.
func (k Key) LockKey() string {
	if k.VariantID == "" {
		return k.ProductID
	}
	return k.ProductID + ":" + k.VariantID
}

func (k Key) HasWarehouse() bool {
	return k.WarehouseID != ""
}

func (k Key) WithWarehouse(warehouseID string) Key {
	k.WarehouseID = warehouseID
	return k
}

func (k Key) String() string {
	parts := []string{k.ProductID}
	if k.VariantID != "" {
		parts = append(parts, k.VariantID)
	}
	if k.WarehouseID != "" {
		parts = append(parts, "@"+k.WarehouseID)
	}
	return strings.Join(parts, ":")
}
