package repositories

import "vectorplan/pkg/domain/entities"

// CureTimeRepository provides the static curing cycle times, one record
// per SKU
type CureTimeRepository interface {
	CureTimes() ([]*entities.CureTimeRecord, error)
}
