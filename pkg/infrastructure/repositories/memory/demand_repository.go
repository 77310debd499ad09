package memory

import (
	"fmt"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// dateKey normalizes a date for map lookup, ignoring time of day.
func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// DemandRepository provides in-memory demand records keyed by date
type DemandRepository struct {
	records map[string][]*entities.DemandRecord
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		records: make(map[string][]*entities.DemandRecord),
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadDemandRecords loads demand records for a date
func (r *DemandRepository) LoadDemandRecords(date time.Time, records []*entities.DemandRecord) {
	key := dateKey(date)
	r.records[key] = append(r.records[key], records...)
}

// DemandRecords returns the demand records for a date. Dates never
// loaded report ErrSourceUnavailable, like a missing file would.
func (r *DemandRepository) DemandRecords(date time.Time) ([]*entities.DemandRecord, error) {
	records, ok := r.records[dateKey(date)]
	if !ok {
		return nil, fmt.Errorf("demand records for %s: %w",
			dateKey(date), repositories.ErrSourceUnavailable)
	}
	return records, nil
}
