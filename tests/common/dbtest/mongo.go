//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/tests/common/builder"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SeedMongoInventory(t *testing.T, db *mongo.Database, key inventory.Key, current, reserved int) {
	t.Helper()

	filter := bson.M{
		"productId":   key.ProductID,
		"variantId":   key.VariantID,
		"warehouseId": key.WarehouseID,
	}
	_, err := db.Collection("inventory").UpdateOne(context.Background(), filter, bson.M{
		"$set": bson.M{
			"currentStock":   current,
			"reservedStock":  reserved,
			"availableStock": current - reserved,
			"isActive":       true,
			"updatedAt":      time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}, options.Update().SetUpsert(true))
	require.NoError(t, err)
}

func InsertMongoReservation(t *testing.T, db *mongo.Database, b *builder.ReservationBuilder) {
	t.Helper()

	_, err := db.Collection("reservations").InsertOne(context.Background(), bson.M{
		"_id":         b.ID.String(),
		"productId":   b.Key.ProductID,
		"variantId":   b.Key.VariantID,
		"warehouseId": b.Key.WarehouseID,
		"userId":      b.UserID,
		"quantity":    b.Quantity,
		"status":      b.Status.String(),
		"sessionId":   b.SessionID,
		"createdAt":   b.CreatedAt,
		"expiresAt":   b.ExpiresAt(),
		"updatedAt":   b.CreatedAt,
	})
	require.NoError(t, err)
}

// ResetMongo empties both collections but keeps their indexes.
func ResetMongo(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"inventory", "reservations"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
