package plantdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// ManualRepository loads planner overrides from the manual demand
// workbook. The workbook only exists when planners have overrides to
// place; a missing file reports ErrSourceUnavailable.
type ManualRepository struct {
	path string
}

// NewManualRepository creates a manual override repository over a data directory
func NewManualRepository(dataDir string) *ManualRepository {
	return &ManualRepository{path: filepath.Join(dataDir, "manual_frontend_demand.xlsx")}
}

// Verify interface compliance
var _ repositories.ManualRepository = (*ManualRepository)(nil)

// ManualEntries loads the override rows. Blank-SKU rows are dropped;
// a non-zero Highest Priority cell marks the entry as highest priority.
func (r *ManualRepository) ManualEntries() ([]*entities.ManualEntry, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filepath.Base(r.path), repositories.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(r.path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(r.path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(r.path),
		"sku code", "market", "quantity", "highest priority"); err != nil {
		return nil, err
	}
	descCol, hasDesc := index["sku description"]

	var entries []*entities.ManualEntry
	for _, row := range rows[1:] {
		sku := entities.SKUCode(cell(row, index["sku code"]))
		if sku == "" {
			continue
		}

		entry := &entities.ManualEntry{
			SKU:             sku,
			Market:          entities.Market(cell(row, index["market"])),
			Quantity:        floatCell(row, index["quantity"]),
			HighestPriority: floatCell(row, index["highest priority"]) != 0,
		}
		if hasDesc {
			entry.Description = cell(row, descCol)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
