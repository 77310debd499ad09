package memory

import (
	"fmt"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// StockoutRepository provides in-memory stockout counts keyed by date
type StockoutRepository struct {
	counts map[string][]*entities.StockoutCount
}

// NewStockoutRepository creates a new in-memory stockout repository
func NewStockoutRepository() *StockoutRepository {
	return &StockoutRepository{
		counts: make(map[string][]*entities.StockoutCount),
	}
}

// Verify interface compliance
var _ repositories.StockoutRepository = (*StockoutRepository)(nil)

// LoadStockoutCounts loads stockout counts for a date
func (r *StockoutRepository) LoadStockoutCounts(date time.Time, counts []*entities.StockoutCount) {
	key := dateKey(date)
	r.counts[key] = append(r.counts[key], counts...)
}

// StockoutCounts returns the stockout counts for a date
func (r *StockoutRepository) StockoutCounts(date time.Time) ([]*entities.StockoutCount, error) {
	counts, ok := r.counts[dateKey(date)]
	if !ok {
		return nil, fmt.Errorf("stockout counts for %s: %w",
			dateKey(date), repositories.ErrSourceUnavailable)
	}
	return counts, nil
}
