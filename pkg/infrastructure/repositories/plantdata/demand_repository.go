package plantdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

// marketBySuffix maps a bandwise location-code suffix to its market.
// Suffixes outside this table are other plants' locations and are
// skipped.
var marketBySuffix = map[string]entities.Market{
	"FG10": entities.MarketRE,
	"OE10": entities.MarketOE,
	"ST10": entities.MarketST,
}

// skuLocation joins the bandwise and buffer reports on their shared key.
type skuLocation struct {
	SKU      entities.SKUCode
	Location string
}

// DemandRepository assembles demand records for a date from three
// plant exports: the bandwise order report (OE/ST/RE), the export
// balance report (EXP) and the buffer penetration report (top-SKU
// flags). All three must exist for the date.
type DemandRepository struct {
	dataDir string
}

// NewDemandRepository creates a demand repository over a data directory
func NewDemandRepository(dataDir string) *DemandRepository {
	return &DemandRepository{dataDir: dataDir}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// DemandRecords loads the combined demand set for a date. Export rows
// come first, then bandwise rows, matching the upstream report order.
func (r *DemandRepository) DemandRecords(date time.Time) ([]*entities.DemandRecord, error) {
	topSKU, err := r.loadTopSKUIndex(date)
	if err != nil {
		return nil, err
	}

	export, err := r.loadExport(date)
	if err != nil {
		return nil, err
	}

	bandwise, err := r.loadBandwise(date, topSKU)
	if err != nil {
		return nil, err
	}

	return append(export, bandwise...), nil
}

// loadBandwise reads the OE/ST/RE demand rows for this plant. The
// market comes from the location-code suffix; top-SKU flags come from
// the buffer report join.
func (r *DemandRepository) loadBandwise(date time.Time, topSKU map[skuLocation]bool) ([]*entities.DemandRecord, error) {
	path := filepath.Join(r.dataDir, "Vectordata", "BOR",
		fmt.Sprintf("BORColorBandwiseReport__%s.csv", date.Format("02-01-2006")))
	rows, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, filepath.Base(path),
		"skucode", "location code", "norm", "virtual norm", "stock"); err != nil {
		return nil, err
	}
	descCol, hasDesc := index["sku description"]

	var records []*entities.DemandRecord
	for _, row := range rows[1:] {
		location := cell(row, index["location code"])
		if !strings.HasPrefix(location, plantCode) {
			continue
		}
		_, suffix, found := strings.Cut(location, "_")
		if !found {
			continue
		}
		market, ok := marketBySuffix[suffix]
		if !ok {
			continue
		}
		sku := entities.SKUCode(cell(row, index["skucode"]))
		if sku == "" {
			continue
		}

		record := &entities.DemandRecord{
			SKU:          sku,
			Market:       market,
			LocationCode: location,
			Norm:         floatCell(row, index["norm"]),
			VirtualNorm:  optionalFloatCell(row, index["virtual norm"]),
			Stock:        floatCell(row, index["stock"]),
			TopSKU:       topSKU[skuLocation{SKU: sku, Location: location}],
		}
		if hasDesc {
			record.Description = cell(row, descCol)
		}
		records = append(records, record)
	}
	return records, nil
}

// loadExport reads the export demand rows. The report stacks a title
// row above its real header, so the header is the second sheet row.
// Export rows carry no norms or stock; their targets stay unset.
func (r *DemandRepository) loadExport(date time.Time) ([]*entities.DemandRecord, error) {
	path := filepath.Join(r.dataDir, "Vectordata", "BMR",
		fmt.Sprintf("Prod_OverAll_BMReport__%s.xlsx", date.Format("02_01_2006")))
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), repositories.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	index := headerIndex(rows[1])
	if err := requireColumns(index, filepath.Base(path), "item code", "plant code"); err != nil {
		return nil, err
	}
	descCol, hasDesc := index["item description"]

	var records []*entities.DemandRecord
	for _, row := range rows[2:] {
		if cell(row, index["plant code"]) != plantCode {
			continue
		}
		sku := entities.SKUCode(cell(row, index["item code"]))
		if sku == "" {
			continue
		}

		record := &entities.DemandRecord{
			SKU:    sku,
			Market: entities.MarketEXP,
			TopSKU: true,
		}
		if hasDesc {
			record.Description = cell(row, descCol)
		}
		records = append(records, record)
	}
	return records, nil
}

// loadTopSKUIndex reads the buffer report's Top SKU flags keyed by
// (SKU, location code).
func (r *DemandRepository) loadTopSKUIndex(date time.Time) (map[skuLocation]bool, error) {
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
		"skucode", "location code", "top sku"); err != nil {
		return nil, err
	}

	topSKU := make(map[skuLocation]bool)
	for _, row := range rows[1:] {
		if cell(row, index["top sku"]) != "T" {
			continue
		}
		key := skuLocation{
			SKU:      entities.SKUCode(cell(row, index["skucode"])),
			Location: cell(row, index["location code"]),
		}
		topSKU[key] = true
	}
	return topSKU, nil
}
