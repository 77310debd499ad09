package plantdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vectorplan/pkg/domain/repositories"
)

// plantCode filters every source file down to the plant this pipeline
// serves. Location codes and plant columns both carry it.
const plantCode = "1300"

// bufferReportPath locates the buffer penetration report for a date.
// The demand and stockout repositories both read it.
func bufferReportPath(dataDir string, date time.Time) string {
	return filepath.Join(dataDir, "Vectordata", "BPR",
		fmt.Sprintf("BufferPenetrationReport__%s.csv", date.Format("02-01-2006")))
}

// readCSVFile reads an entire CSV file. A missing file maps to
// repositories.ErrSourceUnavailable so callers can degrade or skip.
func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), repositories.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// headerIndex maps lowercased, trimmed column names to positions. Plant
// exports are inconsistent about header casing and padding.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// requireColumns reports the first required column missing from index.
func requireColumns(index map[string]int, file string, names ...string) error {
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%s: missing required column %q", file, name)
		}
	}
	return nil
}

// cell returns the trimmed value at idx, or "" when the row is short.
// Spreadsheet rows drop trailing empty cells.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// floatCell coerces a cell to a float64. Blank and unparseable cells
// become 0, matching how the plant exports encode "no value".
func floatCell(row []string, idx int) float64 {
	v, err := strconv.ParseFloat(cell(row, idx), 64)
	if err != nil {
		return 0
	}
	return v
}

// optionalFloatCell distinguishes an absent value from zero.
func optionalFloatCell(row []string, idx int) *float64 {
	s := cell(row, idx)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
