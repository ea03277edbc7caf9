package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/infra"
	"stock-reservation/internal/infra/repository"
	sqlc "stock-reservation/internal/infra/sqlc/generated"
	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/pgconv"
	"stock-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresStore is the pessimistic backend: rows are taken with
// SELECT ... FOR UPDATE NOWAIT and everything else runs in the same transaction.
type PostgresStore struct {
	pool         *pgxpool.Pool
	inventory    *repository.InventoryRepository
	reservations *repository.ReservationRepository
	logger       *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:         pool,
		inventory:    repository.NewInventoryRepository(q),
		reservations: repository.NewReservationRepository(q),
		logger:       logger,
	}
}

func (s *PostgresStore) Backend() string {
	return config.BackendPostgres
}

// ReadCommitted is enough: the NOWAIT row lock serializes writers of one item
func (s *PostgresStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.StockTx) error) error {
	return s.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ctx context.Context, dbtx sqlc.DBTX) error {
		return fn(ctx, &pgTx{dbtx: dbtx, store: s})
	})
}

func (s *PostgresStore) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	var reclaimed int64
	err := s.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(ctx context.Context, dbtx sqlc.DBTX) error {
		n, err := s.reservations.ReclaimExpired(ctx, dbtx, now)
		if err != nil {
			return err
		}
		reclaimed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reclaimed, nil
}

// Retries only serialization failures and deadlocks. Lock contention is returned
// at once so the caller sees it as a retryable result instead of waiting here.
func (s *PostgresStore) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx sqlc.DBTX) error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := s.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				s.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		s.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// One attempt per call so the rollback defer never piles up across retries and
// still runs if fn panics.
func (s *PostgresStore) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx sqlc.DBTX) error) error {
	pgxTx, err := s.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				s.logger.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  sqlc.DBTX
	store *PostgresStore
}

func (t *pgTx) AcquireForUpdate(ctx context.Context, key inventory.Key) (*inventory.Item, error) {
	item, err := t.store.inventory.LockForUpdate(ctx, t.dbtx, key)
	if err != nil {
		return nil, markInventoryErr(err)
	}
	return item, nil
}

func (t *pgTx) ApplyReservation(ctx context.Context, item *inventory.Item, res *reservation.Reservation) (*inventory.Item, error) {
	if err := t.store.reservations.Create(ctx, t.dbtx, res); err != nil {
		return nil, err
	}

	updated, err := t.store.inventory.Reserve(ctx, t.dbtx, item.Key(), res.Quantity(), res.CreatedAt())
	if err != nil {
		return nil, markInventoryErr(err)
	}
	return updated, nil
}

func (t *pgTx) CloseReservation(ctx context.Context, id uuid.UUID, to reservation.Status, now time.Time) (*reservation.Reservation, error) {
	if !to.IsTerminal() || to == reservation.StatusExpired {
		return nil, errs.Wrapf(reservation.ErrInvalidStatus, "cannot close reservation as %s", to)
	}

	res, err := t.store.reservations.Close(ctx, t.dbtx, id, to, now)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		case infra.IsKind(err, infra.KindInvalidState):
			return nil, errs.Mark(err, errs.ErrReservationNotActive)
		default:
			return nil, err
		}
	}

	if _, err := t.store.inventory.Release(ctx, t.dbtx, res.Key(), res.Quantity(), to.ReleasesCurrentStock(), now); err != nil {
		return nil, err
	}
	return res, nil
}

func markInventoryErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindContention):
		return errs.Mark(err, inventory.ErrContention)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, inventory.ErrItemNotFound)
	default:
		return err
	}
}
