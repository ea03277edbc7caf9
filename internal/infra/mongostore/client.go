package mongostore

import (
	"context"
	"fmt"
	"time"

	"stock-reservation/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	inventoryCollection    = "inventory"
	reservationsCollection = "reservations"
)

// Connect opens a client against a replica set; multi-document transactions are
// not available on a standalone server.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, func(context.Context) error, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Disconnect, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	inventoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "productId", Value: 1},
				{Key: "variantId", Value: 1},
				{Key: "warehouseId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		// warehouse fallback picks the fullest row
		{Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "variantId", Value: 1},
			{Key: "availableStock", Value: -1},
		}},
	}
	if _, err := db.Collection(inventoryCollection).Indexes().CreateMany(ctx, inventoryIndexes); err != nil {
		return fmt.Errorf("failed to create inventory indexes: %w", err)
	}

	reservationIndexes := []mongo.IndexModel{
		// reclaim sweep
		{Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "expiresAt", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}},
	}
	if _, err := db.Collection(reservationsCollection).Indexes().CreateMany(ctx, reservationIndexes); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
