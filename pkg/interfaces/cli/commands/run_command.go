package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"vectorplan/pkg/application/services"
	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/infrastructure/events"
	"vectorplan/pkg/infrastructure/repositories/plantdata"
	"vectorplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the pipeline run command
type Config struct {
	DataDir    string
	Date       string
	StartDate  string
	EndDate    string
	Stage      int
	ConfigFile string
	OutputPath string
	Format     string
	Verbose    bool
	Help       bool
}

// defaultOutputs names the report file per pipeline stage.
var defaultOutputs = map[int]string{
	1: "combined_data_output",
	2: "deployment_analysis_report",
	3: "final_hybrid_deployment_report",
}

// RunCommand executes the production prioritization pipeline over the
// plant's daily exports.
type RunCommand struct {
	logger zerolog.Logger
	config Config
}

// NewRunCommand creates a new run command with the given configuration
func NewRunCommand(logger zerolog.Logger, config Config) *RunCommand {
	return &RunCommand{
		logger: logger,
		config: config,
	}
}

// Execute runs the pipeline command
func (c *RunCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	start, end, err := c.resolveDates()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	weights, err := c.loadWeights()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	validation := config.Validate(weights)
	for _, warning := range validation.Warnings {
		c.logger.Warn().Str("check", warning).Msg("configuration warning")
	}
	if !validation.IsValid() {
		return fmt.Errorf("invalid configuration: %s", strings.Join(validation.Errors, "; "))
	}

	if c.config.Verbose {
		c.printHeader(start, end)
	}

	sources := services.Sources{
		Demand:    plantdata.NewDemandRepository(c.config.DataDir),
		Stockouts: plantdata.NewStockoutRepository(c.config.DataDir),
		Dispatch:  plantdata.NewDispatchRepository(c.config.DataDir),
		CureTimes: plantdata.NewCureTimeRepository(c.config.DataDir),
		Mould:     plantdata.NewMouldRepository(c.config.DataDir),
		Manual:    plantdata.NewManualRepository(c.config.DataDir),
	}
	journal := events.NewMemoryJournal()
	orchestrator := services.NewPipelineOrchestratorWithJournal(c.logger, sources, weights, journal)

	if c.config.Verbose {
		fmt.Println("🔄 Running prioritization pipeline...")
	}

	startTime := time.Now()
	result, err := orchestrator.RunRange(ctx, start, end, c.config.Stage)
	elapsed := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Pipeline completed in %v: %d dates processed, %d skipped\n\n",
			elapsed, len(result.Results), len(result.Skipped))
		c.printRunTrace(journal)
	}

	outputConfig := output.Config{
		Format:     c.config.Format,
		OutputPath: c.resolveOutputPath(),
		Verbose:    c.config.Verbose,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Production priority analysis complete!")
	}
	return nil
}

// validateInputs validates the command configuration
func (c *RunCommand) validateInputs() error {
	if c.config.Stage < 1 || c.config.Stage > 3 {
		return fmt.Errorf("invalid stage %d: must be 1, 2 or 3", c.config.Stage)
	}

	switch c.config.Format {
	case "excel", "csv", "text":
	default:
		return fmt.Errorf("invalid format %q: must be excel, csv or text", c.config.Format)
	}

	hasDate := c.config.Date != ""
	hasRange := c.config.StartDate != "" || c.config.EndDate != ""
	if hasDate && hasRange {
		return fmt.Errorf("specify either -date or -start/-end, not both")
	}
	if !hasDate && !hasRange {
		return fmt.Errorf("must specify -date or a -start/-end range")
	}
	if hasRange {
		if c.config.StartDate == "" || c.config.EndDate == "" {
			return fmt.Errorf("a date range needs both -start and -end")
		}
		if c.config.Stage != 1 {
			return fmt.Errorf("date ranges run stage 1 only; stages 2 and 3 take a single -date")
		}
	}
	return nil
}

// resolveDates parses the configured dates into an inclusive range.
func (c *RunCommand) resolveDates() (time.Time, time.Time, error) {
	if c.config.Date != "" {
		date, err := time.Parse(services.DateFormat, c.config.Date)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -date %q: expected DD.MM.YYYY", c.config.Date)
		}
		return date, date, nil
	}

	start, err := time.Parse(services.DateFormat, c.config.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid -start %q: expected DD.MM.YYYY", c.config.StartDate)
	}
	end, err := time.Parse(services.DateFormat, c.config.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid -end %q: expected DD.MM.YYYY", c.config.EndDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("-end %s precedes -start %s", c.config.EndDate, c.config.StartDate)
	}
	return start, end, nil
}

// loadWeights returns the default configuration, with workbook
// overrides applied when a config file is given.
func (c *RunCommand) loadWeights() (config.Weights, error) {
	if c.config.ConfigFile == "" {
		return config.Default(), nil
	}
	return plantdata.NewConfigRepository().Load(c.config.ConfigFile)
}

// resolveOutputPath picks the output file, defaulting per stage.
func (c *RunCommand) resolveOutputPath() string {
	if c.config.OutputPath != "" {
		return c.config.OutputPath
	}
	base := defaultOutputs[c.config.Stage]
	if c.config.Format == "csv" {
		return base + ".csv"
	}
	return base + ".xlsx"
}

// printRunTrace prints the journalled run milestones.
func (c *RunCommand) printRunTrace(journal events.Journal) {
	entries := journal.All()
	if len(entries) == 0 {
		return
	}

	fmt.Println("🔍 Run trace:")
	for _, event := range entries {
		date := strings.Repeat(" ", len(services.DateFormat))
		if !event.Date.IsZero() {
			date = event.Date.Format(services.DateFormat)
		}
		fmt.Printf("  %s  %s  %-16s %s\n",
			event.At.Format("15:04:05"), date, event.Type, event.Detail)
	}
	fmt.Println()
}

// printHeader prints the command header information
func (c *RunCommand) printHeader(start, end time.Time) {
	fmt.Printf("🚀 Vectorplan Production Prioritization\n")
	fmt.Printf("Data directory: %s\n", c.config.DataDir)
	if start.Equal(end) {
		fmt.Printf("Analysis date: %s\n", start.Format(services.DateFormat))
	} else {
		fmt.Printf("Analysis range: %s to %s\n",
			start.Format(services.DateFormat), end.Format(services.DateFormat))
	}
	fmt.Printf("Pipeline stage: %d\n", c.config.Stage)
	if c.config.ConfigFile != "" {
		fmt.Printf("Config workbook: %s\n", c.config.ConfigFile)
	}
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.Format != "text" {
		fmt.Printf("Output path: %s\n", c.resolveOutputPath())
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *RunCommand) showHelp() {
	fmt.Printf(`Vectorplan - Tyre Plant Production Prioritization

USAGE:
    vectorplan -date <D> [OPTIONS]                 # Full pipeline for one date
    vectorplan -start <D> -end <D> -stage 1 ...    # Stage 1 over a date range

OPTIONS:
    -data <dir>       Data directory with the plant exports (default: ./data)
    -date <D>         Analysis date, DD.MM.YYYY
    -start <D>        Range start, DD.MM.YYYY (stage 1 only)
    -end <D>          Range end, inclusive (stage 1 only)
    -stage <n>        1 = demand scoring, 2 = + deployment adjustment,
                      3 = + manual overrides (default: 3)
    -config <file>    Config workbook with weight overrides (optional)
    -output <file>    Output path (default depends on stage)
    -format <fmt>     Output format: excel, csv, text (default: excel)
    -verbose          Enable verbose output
    -init-config      Write the config workbook template and exit
    -sample <dir>     Generate a sample plant dataset into <dir> and exit
    -seed <n>         Sample-data seed for reproducible generation
    -help             Show this help message

DATA DIRECTORY STRUCTURE:
    data/
    ├── Vectordata/
    │   ├── BOR/
    │   │   └── BORColorBandwiseReport__DD-MM-YYYY.csv    # OE/ST/RE demand
    │   ├── BMR/
    │   │   └── Prod_OverAll_BMReport__DD_MM_YYYY.xlsx    # Export demand
    │   ├── BPR/
    │   │   └── BufferPenetrationReport__DD-MM-YYYY.csv   # Stockouts + top-SKU flags
    │   └── Daily Mould Report/
    │       └── DDMMYYYY MouldDetails.csv                 # Machine assignments
    ├── DISPATCH1.csv                                     # Dispatch history (unit prices)
    ├── curing_cycletime.csv                              # Curing cycle times
    └── manual_frontend_demand.xlsx                       # Planner overrides

FILE FORMATS:

BORColorBandwiseReport (CSV):
    SKUCode, SKU Description, Location Code, Norm, Virtual Norm, Stock
    Location codes are <plant>_<suffix>; suffix FG10 = RE, OE10 = OE, ST10 = ST.

Prod_OverAll_BMReport (XLSX, header on the second row):
    Item Code, Item Description, Plant Code

BufferPenetrationReport (CSV):
    SKUCode, Location Code, Location Type, Top SKU (T/F), On Hand Inv. Color

DISPATCH1.csv (ISO-8859-1):
    Material, Plant, Quantity, Amt.in loc.cur.

curing_cycletime.csv:
    SKUCode, Cure Time

MouldDetails (CSV):
    Sapcode, WCNAME, Mould life, Target life

manual_frontend_demand.xlsx:
    SKU Code, SKU Description, Market, Quantity, Highest Priority (1/0)

EXAMPLES:
    # Full pipeline for one date, Excel workbook
    vectorplan -date 15.03.2025 -verbose

    # Stage 1 demand scoring over a week
    vectorplan -start 10.03.2025 -end 16.03.2025 -stage 1

    # Deployment analysis with a custom config workbook
    vectorplan -date 15.03.2025 -stage 2 -config config_input.xlsx

    # Console summary only
    vectorplan -date 15.03.2025 -format text

    # Generate a sample dataset, then run against it
    vectorplan -sample ./data -date 15.03.2025 -seed 42
    vectorplan -data ./data -date 15.03.2025 -verbose
`)
}
