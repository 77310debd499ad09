package memory

import (
	"fmt"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// MouldRepository provides in-memory machine assignments keyed by date
type MouldRepository struct {
	assignments map[string][]*entities.MachineAssignment
}

// NewMouldRepository creates a new in-memory mould repository
func NewMouldRepository() *MouldRepository {
	return &MouldRepository{
		assignments: make(map[string][]*entities.MachineAssignment),
	}
}

// Verify interface compliance
var _ repositories.MouldRepository = (*MouldRepository)(nil)

// LoadMachineAssignments loads machine assignments for a date
func (r *MouldRepository) LoadMachineAssignments(date time.Time, assignments []*entities.MachineAssignment) {
	key := dateKey(date)
	r.assignments[key] = append(r.assignments[key], assignments...)
}

// MachineAssignments returns the machine assignments for a date
func (r *MouldRepository) MachineAssignments(date time.Time) ([]*entities.MachineAssignment, error) {
	assignments, ok := r.assignments[dateKey(date)]
	if !ok {
		return nil, fmt.Errorf("machine assignments for %s: %w",
			dateKey(date), repositories.ErrSourceUnavailable)
	}
	return assignments, nil
}
