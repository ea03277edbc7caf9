package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/pkg/clock"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/metrics"
	"stock-reservation/internal/pkg/ptr"
	"stock-reservation/internal/pkg/tracing"
	"stock-reservation/internal/usecase/guard"
	"stock-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgReserved          = "Reservation created"
	msgDuplicateAttempt  = "A purchase attempt for this product is already in progress"
	msgProductNotFound   = "Product not found"
	msgOutOfStock        = "Product is out of stock"
	msgInsufficientStock = "Only %d left in stock"
	msgContention        = "Product is currently being purchased by another user, try again."
	msgSystemError       = "Purchase could not be completed, try again."
)

type PurchaseCommands interface {
	AttemptPurchase(ctx context.Context, attempt PurchaseAttempt) (*PurchaseResult, error)
	CommitReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type purchaseUseCaseImpl struct {
	store       shared.StockStore
	guard       *guard.Registry
	factory     *reservation.Factory
	clock       clock.Clock
	maxQuantity int
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

func NewPurchaseUseCase(
	store shared.StockStore,
	registry *guard.Registry,
	factory *reservation.Factory,
	clock clock.Clock,
	maxQuantity int,
	logger *slog.Logger,
	m *metrics.Metrics,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		store:       store,
		guard:       registry,
		factory:     factory,
		clock:       clock,
		maxQuantity: maxQuantity,
		logger:      logger,
		metrics:     m,
		tracer:      tracing.Tracer("stock-reservation/commands"),
	}
}

// AttemptPurchase never returns store failures as errors; they come back as a
// SYSTEM_ERROR result. The error return is reserved for malformed attempts.
func (p *purchaseUseCaseImpl) AttemptPurchase(ctx context.Context, attempt PurchaseAttempt) (result *PurchaseResult, err error) {
	quantity, err := p.validate(attempt)
	if err != nil {
		return nil, err
	}

	key := attempt.Key()
	lockKey := key.LockKey()
	started := time.Now()

	ctx, span := p.tracer.Start(ctx, "AttemptPurchase", trace.WithAttributes(
		attribute.String("inventory.lock_key", lockKey),
		attribute.String("inventory.warehouse_id", key.WarehouseID),
		attribute.Int("purchase.quantity", attempt.Quantity),
	))
	defer func() {
		outcome := "SUCCESS"
		if result != nil && !result.Success {
			outcome = string(result.ErrorKind)
			span.SetStatus(codes.Error, outcome)
		}
		span.SetAttributes(attribute.String("purchase.outcome", outcome))
		span.End()
		p.metrics.RecordPurchase(p.store.Backend(), outcome, time.Since(started))
	}()

	if !p.guard.TryRegister(lockKey, attempt.UserID) {
		return failure(KindDuplicatePurchaseAttempt, msgDuplicateAttempt, nil), nil
	}
	p.metrics.SetGuardActive(p.guard.Active())
	defer func() {
		p.guard.Unregister(lockKey, attempt.UserID)
		p.metrics.SetGuardActive(p.guard.Active())
	}()
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.ErrorContext(ctx, "purchase attempt panicked",
				slog.String("lock_key", lockKey),
				slog.Any("panic", rec))
			result, err = failure(KindSystemError, msgSystemError, nil), nil
		}
	}()

	var (
		created *reservation.Reservation
		after   *inventory.Item
	)
	txErr := p.store.Within(ctx, func(ctx context.Context, tx shared.StockTx) error {
		item, err := tx.AcquireForUpdate(ctx, key)
		if err != nil {
			return err
		}
		// availability is judged on the row we now hold, never on an earlier read
		if err := item.CheckAvailability(quantity.Int()); err != nil {
			return err
		}
		res, err := p.factory.NewActive(item.Key(), attempt.UserID, quantity, attempt.SessionID)
		if err != nil {
			return err
		}
		updated, err := tx.ApplyReservation(ctx, item, res)
		if err != nil {
			return err
		}
		created, after = res, updated
		return nil
	})
	if txErr != nil {
		return p.translate(ctx, lockKey, txErr), nil
	}

	p.logger.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", created.ID().String()),
		slog.String("lock_key", lockKey),
		slog.String("warehouse_id", created.Key().WarehouseID),
		slog.Int("quantity", created.Quantity()),
		slog.Int("available_stock", after.Available()))

	return &PurchaseResult{
		Success:        true,
		ReservationID:  ptr.Of(created.ID()),
		ExpiresAt:      ptr.Of(created.ExpiresAt()),
		AvailableStock: ptr.Of(after.Available()),
		Message:        msgReserved,
	}, nil
}

func (p *purchaseUseCaseImpl) CommitReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return p.close(ctx, id, reservation.StatusCommitted)
}

func (p *purchaseUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return p.close(ctx, id, reservation.StatusCancelled)
}

func (p *purchaseUseCaseImpl) close(ctx context.Context, id uuid.UUID, to reservation.Status) (*reservation.Reservation, error) {
	ctx, span := p.tracer.Start(ctx, "CloseReservation", trace.WithAttributes(
		attribute.String("reservation.id", id.String()),
		attribute.String("reservation.status", to.String()),
	))
	defer span.End()

	var closed *reservation.Reservation
	err := p.store.Within(ctx, func(ctx context.Context, tx shared.StockTx) error {
		res, err := tx.CloseReservation(ctx, id, to, p.clock.Now())
		if err != nil {
			return err
		}
		closed = res
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		switch {
		case errs.Is(err, errs.ErrReservationNotFound), errs.Is(err, errs.ErrReservationNotActive):
			return nil, err
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	p.metrics.RecordTransition(to.String())
	p.logger.InfoContext(ctx, "reservation closed",
		slog.String("reservation_id", id.String()),
		slog.String("status", to.String()))
	return closed, nil
}

func (p *purchaseUseCaseImpl) validate(attempt PurchaseAttempt) (reservation.Quantity, error) {
	if attempt.UserID == "" {
		return reservation.Quantity{}, errs.Wrap(errs.ErrInvalidPurchaseAttempt, "user id is required")
	}
	if attempt.ProductID == "" {
		return reservation.Quantity{}, errs.Wrap(errs.ErrInvalidPurchaseAttempt, "product id is required")
	}
	quantity, err := reservation.NewQuantity(attempt.Quantity, p.maxQuantity)
	if err != nil {
		return reservation.Quantity{}, errs.Mark(errs.Wrapf(err, "quantity %d", attempt.Quantity), errs.ErrInvalidPurchaseAttempt)
	}
	return quantity, nil
}

// translate maps whatever came out of the atomic unit onto the result taxonomy.
// Driver codes and messages stay in the log.
func (p *purchaseUseCaseImpl) translate(ctx context.Context, lockKey string, err error) *PurchaseResult {
	var shortage *inventory.ShortageError
	switch {
	case errs.Is(err, inventory.ErrItemNotFound):
		return failure(KindProductNotFound, msgProductNotFound, nil)

	case errs.Is(err, inventory.ErrOutOfStock):
		return failure(KindOutOfStock, msgOutOfStock, ptr.Of(0))

	case errors.As(err, &shortage):
		return failure(KindInsufficientStock, fmt.Sprintf(msgInsufficientStock, shortage.Available), ptr.Of(shortage.Available))

	case errs.Is(err, inventory.ErrContention):
		p.metrics.RecordContention(p.store.Backend())
		p.logger.InfoContext(ctx, "purchase lost row contention",
			slog.String("lock_key", lockKey),
			slog.String("backend", p.store.Backend()))
		return failure(KindSystemError, msgContention, nil)

	default:
		p.logger.ErrorContext(ctx, "purchase attempt failed",
			slog.String("lock_key", lockKey),
			slog.String("backend", p.store.Backend()),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 10)))
		return failure(KindSystemError, msgSystemError, nil)
	}
}

func failure(kind ErrorKind, message string, available *int) *PurchaseResult {
	return &PurchaseResult{
		Success:        false,
		ErrorKind:      kind,
		AvailableStock: available,
		Message:        message,
	}
}
