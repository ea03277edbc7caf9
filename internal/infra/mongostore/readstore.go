package mongostore

import (
	"context"
	"errors"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReadStore struct {
	inventory    *mongo.Collection
	reservations *mongo.Collection
}

func NewReadStore(db *mongo.Database) *ReadStore {
	return &ReadStore{
		inventory:    db.Collection(inventoryCollection),
		reservations: db.Collection(reservationsCollection),
	}
}

func (r *ReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var doc reservationDocument
	err := r.reservations.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.Mark(infra.WrapRepoErr("reservation not found", err, infra.KindNotFound), errs.ErrReservationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return doc.toView()
}

func (r *ReadStore) FindByUser(ctx context.Context, userID string, after *queries.Position, limit int) ([]*queries.ReservationView, error) {
	filter := bson.M{"userId": userID}
	if after != nil {
		filter["$or"] = bson.A{
			bson.M{"createdAt": bson.M{"$lt": after.CreatedAt}},
			bson.M{"createdAt": after.CreatedAt, "_id": bson.M{"$lt": after.ID.String()}},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.reservations.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer cursor.Close(ctx)

	var docs []reservationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(docs))
	for _, doc := range docs {
		view, err := doc.toView()
		if err != nil {
			return nil, infra.WrapRepoErr("malformed reservation id "+doc.ID, err)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *ReadStore) FindByProduct(ctx context.Context, productID, variantID string) ([]*queries.StockView, error) {
	cursor, err := r.inventory.Find(ctx,
		bson.M{"productId": productID, "variantId": variantID, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "warehouseId", Value: 1}}),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory by product", err)
	}
	defer cursor.Close(ctx)

	var docs []inventoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode inventory", err)
	}
	if len(docs) == 0 {
		return nil, errs.Mark(infra.WrapRepoErr("inventory not found for "+productID, nil, infra.KindNotFound), inventory.ErrItemNotFound)
	}

	result := make([]*queries.StockView, len(docs))
	for i, doc := range docs {
		result[i] = doc.toView()
	}
	return result, nil
}
