package commands

import (
	"context"
	"log/slog"

	"stock-reservation/internal/pkg/clock"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/pkg/metrics"
	"stock-reservation/internal/pkg/tracing"
	"stock-reservation/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ReclaimCommands interface {
	// ReclaimExpired never fails; a failed sweep reports zero and is retried by the next run.
	ReclaimExpired(ctx context.Context) ReclaimResult
}

type reclaimUseCaseImpl struct {
	store   shared.StockStore
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewReclaimUseCase(store shared.StockStore, clock clock.Clock, logger *slog.Logger, m *metrics.Metrics) ReclaimCommands {
	return &reclaimUseCaseImpl{
		store:   store,
		clock:   clock,
		logger:  logger,
		metrics: m,
		tracer:  tracing.Tracer("stock-reservation/commands"),
	}
}

func (r *reclaimUseCaseImpl) ReclaimExpired(ctx context.Context) ReclaimResult {
	ctx, span := r.tracer.Start(ctx, "ReclaimExpired")
	defer span.End()

	now := r.clock.Now()
	count, err := r.store.ReclaimExpired(ctx, now)
	r.metrics.RecordReclaim(count, err)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "reclaim sweep failed",
			slog.String("backend", r.store.Backend()),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 10)))
		return ReclaimResult{}
	}

	span.SetAttributes(attribute.Int64("reclaim.count", count))
	if count > 0 {
		r.logger.InfoContext(ctx, "expired reservations reclaimed",
			slog.String("backend", r.store.Backend()),
			slog.Int64("reclaimed", count))
	}
	return ReclaimResult{ReclaimedCount: count}
}
