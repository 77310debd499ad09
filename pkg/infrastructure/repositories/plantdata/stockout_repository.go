package plantdata

import (
	"fmt"
	"path/filepath"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// StockoutRepository pivots the buffer penetration report into black
// and red stockout counts per SKU and location type.
type StockoutRepository struct {
	dataDir string
}

// NewStockoutRepository creates a stockout repository over a data directory
func NewStockoutRepository(dataDir string) *StockoutRepository {
	return &StockoutRepository{dataDir: dataDir}
}

// Verify interface compliance
var _ repositories.StockoutRepository = (*StockoutRepository)(nil)

// StockoutCounts counts Black and Red buffer rows per (SKU, location
// type) for a date. The report writes the depot type in two casings;
// both count as Depot.
func (r *StockoutRepository) StockoutCounts(date time.Time) ([]*entities.StockoutCount, error) {
	path := bufferReportPath(r.dataDir, date)
	rows, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(path),
		"skucode", "location type", "on hand inv. color"); err != nil {
		return nil, err
	}

	type pivotKey struct {
		SKU          entities.SKUCode
		LocationType entities.LocationType
	}
	counts := make(map[pivotKey]*entities.StockoutCount)
	var order []pivotKey

	for _, row := range rows[1:] {
		sku := entities.SKUCode(cell(row, index["skucode"]))
		if sku == "" {
			continue
		}
		colour := cell(row, index["on hand inv. color"])
		if colour != "Black" && colour != "Red" {
			continue
		}
		locationType := entities.LocationType(cell(row, index["location type"]))
		if locationType == "depot" {
			locationType = entities.LocationDepot
		}

		key := pivotKey{SKU: sku, LocationType: locationType}
		count, ok := counts[key]
		if !ok {
			count = &entities.StockoutCount{SKU: sku, LocationType: locationType}
			counts[key] = count
			order = append(order, key)
		}
		if colour == "Black" {
			count.BlackCount++
		} else {
			count.RedCount++
		}
	}

	out := make([]*entities.StockoutCount, 0, len(order))
	for _, key := range order {
		out = append(out, counts[key])
	}
	return out, nil
}
