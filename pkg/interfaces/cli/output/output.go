package output

import (
	"fmt"

	"vectorplan/pkg/application/dto"
)

// Config holds configuration for report generation
type Config struct {
	Format     string
	OutputPath string
	Verbose    bool
}

// Generate writes the run result in the configured format. Excel and CSV
// write files at Config.OutputPath; text prints to stdout.
func Generate(result *dto.RangeResult, config Config) error {
	switch config.Format {
	case "excel":
		return generateExcelOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "text":
		return generateTextOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}
