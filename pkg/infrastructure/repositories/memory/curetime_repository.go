package memory

import (
	"fmt"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// CureTimeRepository provides in-memory curing cycle times
type CureTimeRepository struct {
	records     []*entities.CureTimeRecord
	unavailable bool
}

// NewCureTimeRepository creates a new in-memory cure time repository
func NewCureTimeRepository() *CureTimeRepository {
	return &CureTimeRepository{}
}

// Verify interface compliance
var _ repositories.CureTimeRepository = (*CureTimeRepository)(nil)

// LoadCureTimes loads cure time records into the repository
func (r *CureTimeRepository) LoadCureTimes(records []*entities.CureTimeRecord) {
	r.records = append(r.records, records...)
}

// SetUnavailable makes the repository behave like a missing source file
func (r *CureTimeRepository) SetUnavailable() {
	r.unavailable = true
}

// CureTimes returns all cure time records
func (r *CureTimeRepository) CureTimes() ([]*entities.CureTimeRecord, error) {
	if r.unavailable {
		return nil, fmt.Errorf("cure times: %w", repositories.ErrSourceUnavailable)
	}
	return r.records, nil
}
