package memory

import (
	"fmt"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// ManualRepository provides in-memory manual override entries
type ManualRepository struct {
	entries     []*entities.ManualEntry
	unavailable bool
}

// NewManualRepository creates a new in-memory manual override repository
func NewManualRepository() *ManualRepository {
	return &ManualRepository{}
}

// Verify interface compliance
var _ repositories.ManualRepository = (*ManualRepository)(nil)

// LoadManualEntries loads manual entries into the repository
func (r *ManualRepository) LoadManualEntries(entries []*entities.ManualEntry) {
	r.entries = append(r.entries, entries...)
}

// SetUnavailable makes the repository behave like a missing source file
func (r *ManualRepository) SetUnavailable() {
	r.unavailable = true
}

// ManualEntries returns all manual override entries
func (r *ManualRepository) ManualEntries() ([]*entities.ManualEntry, error) {
	if r.unavailable {
		return nil, fmt.Errorf("manual entries: %w", repositories.ErrSourceUnavailable)
	}
	return r.entries, nil
}
