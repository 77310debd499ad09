package plantdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// DispatchRepository loads historical dispatches from the plant's SAP
// export. The export is ISO-8859-1 encoded and writes amounts with
// thousands separators.
type DispatchRepository struct {
	path string
}

// NewDispatchRepository creates a dispatch repository over a data directory
func NewDispatchRepository(dataDir string) *DispatchRepository {
	return &DispatchRepository{path: filepath.Join(dataDir, "DISPATCH1.csv")}
}

// Verify interface compliance
var _ repositories.DispatchRepository = (*DispatchRepository)(nil)

// DispatchRecords loads this plant's dispatch rows. Rows with
// non-positive quantities or unparseable amounts are skipped.
func (r *DispatchRepository) DispatchRecords() ([]*entities.DispatchRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filepath.Base(r.path), repositories.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer file.Close()

	decoded := transform.NewReader(file, charmap.ISO8859_1.NewDecoder())
	rows, err := csv.NewReader(decoded).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(r.path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(r.path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(r.path),
		"material", "plant", "quantity", "amt.in loc.cur."); err != nil {
		return nil, err
	}

	var records []*entities.DispatchRecord
	for _, row := range rows[1:] {
		if cell(row, index["plant"]) != plantCode {
			continue
		}
		sku := entities.SKUCode(cell(row, index["material"]))
		if sku == "" {
			continue
		}
		quantity, err := decimal.NewFromString(cell(row, index["quantity"]))
		if err != nil || quantity.Sign() <= 0 {
			continue
		}
		raw := strings.ReplaceAll(cell(row, index["amt.in loc.cur."]), ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}

		records = append(records, &entities.DispatchRecord{
			SKU:      sku,
			Quantity: quantity,
			Amount:   amount,
		})
	}
	return records, nil
}
