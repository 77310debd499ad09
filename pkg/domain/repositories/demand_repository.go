package repositories

import (
	"time"

	"vectorplan/pkg/domain/entities"
)

// DemandRepository provides the per-date demand record set across all
// market sources
type DemandRepository interface {
	DemandRecords(date time.Time) ([]*entities.DemandRecord, error)
}
