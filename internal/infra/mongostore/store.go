package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	codeWriteConflict         = 112
	labelTransientTransaction = "TransientTransactionError"
)

// MongoStore is the optimistic backend. Rows are read without a lock and written
// with a compare-and-swap on version; a lost race is contention, never retried here.
type MongoStore struct {
	client       *mongo.Client
	inventory    *mongo.Collection
	reservations *mongo.Collection
	logger       *slog.Logger
}

func NewMongoStore(ctx context.Context, db *mongo.Database, logger *slog.Logger) (*MongoStore, error) {
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return &MongoStore{
		client:       db.Client(),
		inventory:    db.Collection(inventoryCollection),
		reservations: db.Collection(reservationsCollection),
		logger:       logger,
	}, nil
}

func (s *MongoStore) Backend() string {
	return config.BackendMongo
}

func (s *MongoStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.StockTx) error) error {
	return s.runInTx(ctx, func(sc mongo.SessionContext) error {
		return fn(sc, &mongoTx{store: s})
	})
}

// ReclaimExpired flips each stale reservation with a status-guarded update and only
// releases stock for the ones this sweep actually flipped.
func (s *MongoStore) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	var reclaimed int64
	err := s.runInTx(ctx, func(sc mongo.SessionContext) error {
		reclaimed = 0

		cursor, err := s.reservations.Find(sc, bson.M{
			"status":    reservation.StatusActive.String(),
			"expiresAt": bson.M{"$lt": now},
		})
		if err != nil {
			return infra.WrapRepoErr("failed to find expired reservations", err)
		}
		var expired []reservationDocument
		if err := cursor.All(sc, &expired); err != nil {
			return infra.WrapRepoErr("failed to decode expired reservations", err)
		}

		for _, doc := range expired {
			res, err := s.reservations.UpdateOne(sc,
				bson.M{"_id": doc.ID, "status": reservation.StatusActive.String()},
				bson.M{"$set": bson.M{"status": reservation.StatusExpired.String(), "updatedAt": now}},
			)
			if err != nil {
				return infra.WrapRepoErr("failed to expire reservation", err)
			}
			if res.ModifiedCount == 0 {
				continue
			}
			if err := s.release(sc, doc.key(), doc.Quantity, false, now); err != nil {
				return err
			}
			reclaimed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reclaimed, nil
}

// runInTx drives the session by hand: WithTransaction would retry transient
// errors internally, and a lost race must surface as contention instead.
func (s *MongoStore) runInTx(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return infra.WrapRepoErr("failed to start session", err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	err = mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(txnOpts); err != nil {
			return infra.WrapRepoErr("failed to start transaction", err)
		}
		if err := fn(sc); err != nil {
			if abortErr := sc.AbortTransaction(sc); abortErr != nil {
				s.logger.Warn("abort transaction failed", "error", abortErr.Error())
			}
			return err
		}
		if err := sc.CommitTransaction(sc); err != nil {
			return infra.WrapRepoErr("failed to commit transaction", err)
		}
		return nil
	})
	if err != nil && isContention(err) {
		return errs.Mark(err, inventory.ErrContention)
	}
	return err
}

func (s *MongoStore) release(ctx context.Context, key inventory.Key, quantity int, consume bool, now time.Time) error {
	inc := bson.M{
		"reservedStock": -quantity,
		"version":       1,
	}
	if consume {
		inc["currentStock"] = -quantity
	} else {
		inc["availableStock"] = quantity
	}

	res, err := s.inventory.UpdateOne(ctx, keyFilter(key), bson.M{
		"$inc": inc,
		"$set": bson.M{"updatedAt": now},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release reserved stock", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("inventory item missing for "+key.String(), nil, infra.KindNotFound)
	}
	return nil
}

func isContention(err error) bool {
	if infra.IsKind(err, infra.KindContention) {
		return true
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(codeWriteConflict) || se.HasErrorLabel(labelTransientTransaction)
	}
	return false
}

type mongoTx struct {
	store *MongoStore
}

func (t *mongoTx) AcquireForUpdate(ctx context.Context, key inventory.Key) (*inventory.Item, error) {
	filter := bson.M{
		"productId": key.ProductID,
		"variantId": key.VariantID,
		"isActive":  true,
	}
	opts := options.FindOne()
	if key.HasWarehouse() {
		filter["warehouseId"] = key.WarehouseID
	} else {
		opts.SetSort(bson.D{{Key: "availableStock", Value: -1}, {Key: "warehouseId", Value: 1}})
	}

	var doc inventoryDocument
	err := t.store.inventory.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.Mark(infra.WrapRepoErr("inventory item not found "+key.String(), err, infra.KindNotFound), inventory.ErrItemNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read inventory item", err)
	}
	return doc.toDomain(), nil
}

func (t *mongoTx) ApplyReservation(ctx context.Context, item *inventory.Item, res *reservation.Reservation) (*inventory.Item, error) {
	q := res.Quantity()
	filter := keyFilter(item.Key())
	filter["version"] = item.Version()

	update := bson.M{
		"$inc": bson.M{
			"reservedStock":  q,
			"availableStock": -q,
			"version":        1,
		},
		"$set": bson.M{"updatedAt": res.CreatedAt()},
	}

	var doc inventoryDocument
	err := t.store.inventory.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// version moved since the read: somebody else won
			return nil, errs.Mark(infra.WrapRepoErr(fmt.Sprintf("version %d is stale", item.Version()), err, infra.KindContention), inventory.ErrContention)
		}
		if isContention(err) {
			return nil, errs.Mark(infra.WrapRepoErr("write conflict on inventory item", err, infra.KindContention), inventory.ErrContention)
		}
		return nil, infra.WrapRepoErr("failed to update inventory item", err)
	}

	if _, err := t.store.reservations.InsertOne(ctx, newReservationDocument(res)); err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return doc.toDomain(), nil
}

func (t *mongoTx) CloseReservation(ctx context.Context, id uuid.UUID, to reservation.Status, now time.Time) (*reservation.Reservation, error) {
	if !to.IsTerminal() || to == reservation.StatusExpired {
		return nil, errs.Wrapf(reservation.ErrInvalidStatus, "cannot close reservation as %s", to)
	}

	var doc reservationDocument
	err := t.store.reservations.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String(), "status": reservation.StatusActive.String()},
		bson.M{"$set": bson.M{"status": to.String(), "updatedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("failed to close reservation", err)
		}
		n, countErr := t.store.reservations.CountDocuments(ctx, bson.M{"_id": id.String()})
		if countErr != nil {
			return nil, infra.WrapRepoErr("failed to read reservation", countErr)
		}
		if n == 0 {
			return nil, errs.Mark(infra.WrapRepoErr("reservation not found", err, infra.KindNotFound), errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(infra.WrapRepoErr("reservation is not active", err, infra.KindInvalidState), errs.ErrReservationNotActive)
	}

	if err := t.store.release(ctx, doc.key(), doc.Quantity, to.ReleasesCurrentStock(), now); err != nil {
		return nil, err
	}
	return doc.toDomain()
}
