package repositories

import "vectorplan/pkg/domain/entities"

// ManualRepository provides the manual override entries maintained by
// planners
type ManualRepository interface {
	ManualEntries() ([]*entities.ManualEntry, error)
}
