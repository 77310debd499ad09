package plantdata

import (
	"fmt"
	"path/filepath"
	"strconv"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// CureTimeRepository loads curing cycle times. A SKU listed more than
// once keeps its longest cure time.
type CureTimeRepository struct {
	path string
}

// NewCureTimeRepository creates a cure time repository over a data directory
func NewCureTimeRepository(dataDir string) *CureTimeRepository {
	return &CureTimeRepository{path: filepath.Join(dataDir, "curing_cycletime.csv")}
}

// Verify interface compliance
var _ repositories.CureTimeRepository = (*CureTimeRepository)(nil)

// CureTimes loads one record per SKU. Rows with blank or unparseable
// cure times are skipped; those SKUs fall back to the configured
// default downstream.
func (r *CureTimeRepository) CureTimes() ([]*entities.CureTimeRecord, error) {
	rows, err := readCSVFile(r.path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(r.path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(r.path), "skucode", "cure time"); err != nil {
		return nil, err
	}

	longest := make(map[entities.SKUCode]float64)
	var order []entities.SKUCode
	for _, row := range rows[1:] {
		sku := entities.SKUCode(cell(row, index["skucode"]))
		if sku == "" {
			continue
		}
		minutes, err := strconv.ParseFloat(cell(row, index["cure time"]), 64)
		if err != nil {
			continue
		}
		current, seen := longest[sku]
		if !seen {
			order = append(order, sku)
		}
		if !seen || minutes > current {
			longest[sku] = minutes
		}
	}

	records := make([]*entities.CureTimeRecord, 0, len(order))
	for _, sku := range order {
		records = append(records, &entities.CureTimeRecord{SKU: sku, CureMinutes: longest[sku]})
	}
	return records, nil
}
