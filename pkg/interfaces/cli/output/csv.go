package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vectorplan/pkg/application/dto"
)

// generateCSVOutput writes one CSV file per processed date, named
// after the output path with the sheet name appended.
func generateCSVOutput(result *dto.RangeResult, config Config) error {
	base := strings.TrimSuffix(config.OutputPath, ".csv")

	for _, dateResult := range result.Results {
		filename := fmt.Sprintf("%s_%s.csv", base, sheetName(dateResult.Date, dateResult.Stage))
		if err := writeCSVFile(filename, resultTable(dateResult)); err != nil {
			return err
		}
		if config.Verbose {
			fmt.Printf("💾 CSV report saved to: %s\n", filename)
		}
	}
	return nil
}

func writeCSVFile(filename string, t table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write headers to %s: %w", filename, err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = formatCell(value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record to %s: %w", filename, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatCell stringifies a cell; nil renders as an empty field.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
