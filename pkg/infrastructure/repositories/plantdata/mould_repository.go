package plantdata

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// MouldRepository loads the shop floor's daily mould report. The
// report is hand-maintained and frequently absent; a missing file
// reports ErrSourceUnavailable.
type MouldRepository struct {
	dataDir string
}

// NewMouldRepository creates a mould repository over a data directory
func NewMouldRepository(dataDir string) *MouldRepository {
	return &MouldRepository{dataDir: dataDir}
}

// Verify interface compliance
var _ repositories.MouldRepository = (*MouldRepository)(nil)

// MachineAssignments loads one assignment per report row. Malformed
// life values fail the load with row context.
func (r *MouldRepository) MachineAssignments(date time.Time) ([]*entities.MachineAssignment, error) {
	path := filepath.Join(r.dataDir, "Vectordata", "Daily Mould Report",
		fmt.Sprintf("%s MouldDetails.csv", date.Format("02012006")))
	rows, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(path),
		"sapcode", "wcname", "mould life", "target life"); err != nil {
		return nil, err
	}

	var assignments []*entities.MachineAssignment
	for i, row := range rows[1:] {
		sku := entities.SKUCode(cell(row, index["sapcode"]))
		if sku == "" {
			continue
		}
		mouldLife, err := strconv.ParseFloat(cell(row, index["mould life"]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid mould life: %w", filepath.Base(path), i+2, err)
		}
		targetLife, err := strconv.ParseFloat(cell(row, index["target life"]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid target life: %w", filepath.Base(path), i+2, err)
		}

		assignments = append(assignments, &entities.MachineAssignment{
			Machine:    cell(row, index["wcname"]),
			SKU:        sku,
			MouldLife:  mouldLife,
			TargetLife: targetLife,
		})
	}
	return assignments, nil
}
