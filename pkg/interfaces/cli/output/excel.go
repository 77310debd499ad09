package output

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"vectorplan/pkg/application/dto"
)

// sheetName names a date's sheet the way the plant's legacy reports
// did: bare DDMMYYYY for demand runs, stage-prefixed otherwise.
func sheetName(date time.Time, stage int) string {
	name := date.Format("02012006")
	switch stage {
	case 2:
		return "S2_" + name
	case 3:
		return "S3_" + name
	}
	return name
}

// generateExcelOutput writes one workbook with a sheet per processed
// date, rows already in final order.
func generateExcelOutput(result *dto.RangeResult, config Config) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, dateResult := range result.Results {
		sheet := sheetName(dateResult.Date, dateResult.Stage)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, headerStyle, resultTable(dateResult)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(config.OutputPath); err != nil {
		return fmt.Errorf("failed to save Excel report %s: %w", config.OutputPath, err)
	}
	if config.Verbose {
		fmt.Printf("💾 Excel report saved to: %s\n", config.OutputPath)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, t table) error {
	for i, header := range t.Headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellRef, header); err != nil {
			return fmt.Errorf("failed to write header on %s: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, cellRef, cellRef, headerStyle); err != nil {
			return fmt.Errorf("failed to style header on %s: %w", sheet, err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to address column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth(header)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	// Keep the header visible while scrolling long rankings.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header on %s: %w", sheet, err)
	}

	for rowIdx, row := range t.Rows {
		for colIdx, value := range row {
			if value == nil {
				continue
			}
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, value); err != nil {
				return fmt.Errorf("failed to write cell %s on %s: %w", cellRef, sheet, err)
			}
		}
	}
	return nil
}

func columnWidth(header string) float64 {
	switch header {
	case "SKU Description":
		return 32
	case "SKUCode":
		return 16
	default:
		return 14
	}
}
