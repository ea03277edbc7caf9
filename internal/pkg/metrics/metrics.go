package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stock_reservation"

// Metrics holds the reservation core's collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	PurchaseAttempts  *prometheus.CounterVec
	PurchaseDuration  *prometheus.HistogramVec
	LockContention    *prometheus.CounterVec
	ReservationsMoved *prometheus.CounterVec
	ReclaimRuns       *prometheus.CounterVec
	ReclaimedTotal    prometheus.Counter
	GuardActiveUsers  prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		PurchaseAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_attempts_total",
			Help:      "Purchase attempts by outcome",
		}, []string{"backend", "outcome"}),
		PurchaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "purchase_attempt_duration_seconds",
			Help:      "Latency of purchase attempts, guard check included",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"backend"}),
		LockContention: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_contention_total",
			Help:      "Attempts rejected because the row lock or version was taken",
		}, []string{"backend"}),
		ReservationsMoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_transitions_total",
			Help:      "Reservation status transitions out of active",
		}, []string{"status"}),
		ReclaimRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reclaim_runs_total",
			Help:      "Expiry sweeps by result",
		}, []string{"result"}),
		ReclaimedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reclaimed_reservations_total",
			Help:      "Reservations expired by the sweep",
		}),
		GuardActiveUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guard_active_attempts",
			Help:      "Attempts currently registered in the duplicate-attempt guard",
		}),
	}

	registry.MustRegister(
		m.PurchaseAttempts,
		m.PurchaseDuration,
		m.LockContention,
		m.ReservationsMoved,
		m.ReclaimRuns,
		m.ReclaimedTotal,
		m.GuardActiveUsers,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RecordPurchase(backend, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PurchaseAttempts.WithLabelValues(backend, outcome).Inc()
	m.PurchaseDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordContention(backend string) {
	if m == nil {
		return
	}
	m.LockContention.WithLabelValues(backend).Inc()
}

func (m *Metrics) RecordTransition(status string) {
	if m == nil {
		return
	}
	m.ReservationsMoved.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordReclaim(reclaimed int64, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ReclaimRuns.WithLabelValues("error").Inc()
		return
	}
	m.ReclaimRuns.WithLabelValues("ok").Inc()
	m.ReclaimedTotal.Add(float64(reclaimed))
}

func (m *Metrics) SetGuardActive(n int) {
	if m == nil {
		return
	}
	m.GuardActiveUsers.Set(float64(n))
}
