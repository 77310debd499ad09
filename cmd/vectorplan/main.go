package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"vectorplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		dataDir    = flag.String("data", "./data", "Data directory with the plant exports")
		date       = flag.String("date", "", "Analysis date, DD.MM.YYYY")
		startDate  = flag.String("start", "", "Range start, DD.MM.YYYY (stage 1 only)")
		endDate    = flag.String("end", "", "Range end, inclusive (stage 1 only)")
		stage      = flag.Int("stage", 3, "Pipeline stage: 1, 2 or 3")
		configFile = flag.String("config", "", "Config workbook with weight overrides")
		outputPath = flag.String("output", "", "Output path (default depends on stage)")
		format     = flag.String("format", "excel", "Output format: excel, csv, text")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		initConfig = flag.Bool("init-config", false, "Write the config workbook template and exit")
		sampleDir  = flag.String("sample", "", "Generate a sample plant dataset into this directory and exit")
		seed       = flag.Int64("seed", 0, "Sample-data seed for reproducible generation")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	ctx := context.Background()

	if *initConfig || *sampleDir != "" {
		cmd := commands.NewGenerateCommand(commands.GenerateConfig{
			OutputDir:  *sampleDir,
			Date:       *date,
			Seed:       *seed,
			InitConfig: *initConfig,
			ConfigPath: *configFile,
			Verbose:    *verbose,
		})
		if err := cmd.Execute(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create command configuration
	config := commands.Config{
		DataDir:    *dataDir,
		Date:       *date,
		StartDate:  *startDate,
		EndDate:    *endDate,
		Stage:      *stage,
		ConfigFile: *configFile,
		OutputPath: *outputPath,
		Format:     *format,
		Verbose:    *verbose,
		Help:       *help,
	}

	// Create and execute command
	cmd := commands.NewRunCommand(newLogger(*verbose), config)
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger; -verbose drops the level to debug.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
