package repositories

import (
	"time"

	"vectorplan/pkg/domain/entities"
)

// StockoutRepository provides per-date stockout counts aggregated per
// (SKU, location type)
type StockoutRepository interface {
	StockoutCounts(date time.Time) ([]*entities.StockoutCount, error)
}
