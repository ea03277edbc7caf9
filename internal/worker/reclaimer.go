package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stock-reservation/internal/pkg/config"
	"stock-reservation/internal/usecase/commands"
)

// Reclaimer runs the expiry sweep on a fixed interval until stopped.
type Reclaimer struct {
	commands  commands.ReclaimCommands
	logger    *slog.Logger
	interval  time.Duration
	timeout   time.Duration
	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
	runs      int
	reclaimed int64
}

func NewReclaimer(cmds commands.ReclaimCommands, logger *slog.Logger, cfg config.ReservationConfig) *Reclaimer {
	timeout := cfg.ReclaimTimeout
	if timeout <= 0 || timeout > cfg.ReclaimInterval {
		timeout = cfg.ReclaimInterval
	}
	return &Reclaimer{
		commands: cmds,
		logger:   logger,
		interval: cfg.ReclaimInterval,
		timeout:  timeout,
	}
}

func (r *Reclaimer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return fmt.Errorf("reclaimer already running")
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.stoppedCh = make(chan struct{})

	r.logger.Info("starting reclaimer", "interval", r.interval, "timeout", r.timeout)

	go r.run(ctx, r.stopCh, r.stoppedCh)
	return nil
}

func (r *Reclaimer) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return fmt.Errorf("reclaimer not running")
	}
	stopCh, stoppedCh := r.stopCh, r.stoppedCh
	r.mu.Unlock()

	close(stopCh)
	<-stoppedCh

	r.mu.Lock()
	r.running = false
	runs, reclaimed := r.runs, r.reclaimed
	r.mu.Unlock()

	r.logger.Info("reclaimer stopped", "runs", runs, "reclaimed", reclaimed)
	return nil
}

func (r *Reclaimer) run(ctx context.Context, stopCh <-chan struct{}, stoppedCh chan<- struct{}) {
	defer close(stoppedCh)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// A panic in one sweep is logged and the loop keeps its schedule.
func (r *Reclaimer) sweep(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reclaim sweep panicked", "panic", rec)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.commands.ReclaimExpired(runCtx)

	r.mu.Lock()
	r.runs++
	r.reclaimed += result.ReclaimedCount
	r.mu.Unlock()
}
