package repositories

import "vectorplan/pkg/domain/entities"

// DispatchRepository provides the historical dispatch records used for
// unit-price averaging (not date-scoped; one rolling export)
type DispatchRepository interface {
	DispatchRecords() ([]*entities.DispatchRecord, error)
}
