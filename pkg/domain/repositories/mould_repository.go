package repositories

import (
	"time"

	"vectorplan/pkg/domain/entities"
)

// MouldRepository provides the per-date machine assignments from the
// daily mould report. A missing report for a date is reported as
// ErrSourceUnavailable so callers can degrade instead of failing.
type MouldRepository interface {
	MachineAssignments(date time.Time) ([]*entities.MachineAssignment, error)
}
