package memory

import (
	"fmt"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// DispatchRepository provides in-memory dispatch history
type DispatchRepository struct {
	records     []*entities.DispatchRecord
	unavailable bool
}

// NewDispatchRepository creates a new in-memory dispatch repository
func NewDispatchRepository() *DispatchRepository {
	return &DispatchRepository{}
}

// Verify interface compliance
var _ repositories.DispatchRepository = (*DispatchRepository)(nil)

// LoadDispatchRecords loads dispatch records into the repository
func (r *DispatchRepository) LoadDispatchRecords(records []*entities.DispatchRecord) {
	r.records = append(r.records, records...)
}

// SetUnavailable makes the repository behave like a missing source file
func (r *DispatchRepository) SetUnavailable() {
	r.unavailable = true
}

// DispatchRecords returns all dispatch records
func (r *DispatchRepository) DispatchRecords() ([]*entities.DispatchRecord, error) {
	if r.unavailable {
		return nil, fmt.Errorf("dispatch records: %w", repositories.ErrSourceUnavailable)
	}
	return r.records, nil
}
