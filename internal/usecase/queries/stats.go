package queries

import "stock-reservation/internal/usecase/guard"

type StatsQueries interface {
	GetActivePurchaseStats() ActivePurchaseStats
}

type statsQueriesImpl struct {
	guard *guard.Registry
}

func NewStatsQueries(registry *guard.Registry) StatsQueries {
	return &statsQueriesImpl{guard: registry}
}

// GetActivePurchaseStats reflects this process only.
func (q *statsQueriesImpl) GetActivePurchaseStats() ActivePurchaseStats {
	s := q.guard.Stats()
	return ActivePurchaseStats{
		TotalActiveProducts: s.TotalActiveProducts,
		TotalActiveUsers:    s.TotalActiveUsers,
		PerProductUserCount: s.PerProductUserCount,
	}
}
