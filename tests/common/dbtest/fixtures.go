//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stock-reservation/internal/domain/inventory"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func SeedInventory(t *testing.T, db DBLike, key inventory.Key, current, reserved int) {
	t.Helper()

	err := sqlc.New().UpsertInventoryItem(context.Background(), db, sqlc.UpsertInventoryItemParams{
		ProductID:     key.ProductID,
		VariantID:     key.VariantID,
		WarehouseID:   key.WarehouseID,
		CurrentStock:  int32(current),  // #nosec G115 -- test fixture
		ReservedStock: int32(reserved), // #nosec G115 -- test fixture
	})
	require.NoError(t, err)
}

// InsertReservation writes a reservation row as-is, bypassing the purchase flow.
// Pair it with SeedInventory(reserved=...) so the counters stay consistent.
func InsertReservation(t *testing.T, db DBLike, b *builder.ReservationBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, product_id, variant_id, warehouse_id, user_id, quantity, status, session_id, created_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $9)`,
		b.ID, b.Key.ProductID, b.Key.VariantID, b.Key.WarehouseID, b.UserID, b.Quantity,
		b.Status.String(), b.SessionID, b.CreatedAt, b.ExpiresAt())
	require.NoError(t, err)

	return b.ID
}

type InventoryCounts struct {
	CurrentStock  int
	ReservedStock int
	Version       int64
}

func ReadInventory(t *testing.T, db DBLike, key inventory.Key) InventoryCounts {
	t.Helper()

	var c InventoryCounts
	err := db.QueryRow(context.Background(),
		"SELECT current_stock, reserved_stock, version FROM inventory WHERE product_id = $1 AND variant_id = $2 AND warehouse_id = $3",
		key.ProductID, key.VariantID, key.WarehouseID).
		Scan(&c.CurrentStock, &c.ReservedStock, &c.Version)
	require.NoError(t, err)
	return c
}

func CountReservations(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE status = $1", status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
