package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"

	"vectorplan/pkg/application/services"
	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/infrastructure/repositories/plantdata"
)

// GenerateConfig holds configuration for sample-data generation
type GenerateConfig struct {
	OutputDir  string // dataset target directory; empty skips the dataset
	Date       string // analysis date the per-date files are named for
	Seed       int64  // random seed for reproducible generation
	InitConfig bool   // write the config workbook template
	ConfigPath string // template target path; defaults to config_input.xlsx
	Verbose    bool
}

const (
	samplePlant    = "1300"
	sampleSKUCount = 18
)

// sampleSKU is one synthetic SKU with its demand-channel placement.
type sampleSKU struct {
	Code        string
	Description string
	Market      entities.Market
	Location    string // bandwise location code; empty for export SKUs
}

// GenerateCommand writes a coherent synthetic plant dataset so the
// pipeline can be exercised end-to-end without real plant exports.
type GenerateCommand struct {
	config GenerateConfig
	faker  *gofakeit.Faker
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		faker:  gofakeit.New(seed),
	}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.InitConfig {
		path := cmd.config.ConfigPath
		if path == "" {
			path = "config_input.xlsx"
		}
		if err := plantdata.NewConfigRepository().WriteTemplate(path); err != nil {
			return fmt.Errorf("failed to write config template: %w", err)
		}
		fmt.Printf("💾 Config workbook template written to: %s\n", path)
	}

	if cmd.config.OutputDir == "" {
		return nil
	}

	date, err := cmd.resolveDate()
	if err != nil {
		return err
	}

	if cmd.config.Verbose {
		fmt.Printf("🔧 Generating sample plant dataset for %s\n", date.Format(services.DateFormat))
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
	}

	skus := cmd.generateBandwiseSKUs()
	exports := cmd.generateExportSKUs()

	if cmd.config.Verbose {
		fmt.Println("📋 Generating bandwise order report...")
	}
	if err := cmd.writeBandwiseReport(date, skus); err != nil {
		return fmt.Errorf("failed to generate bandwise report: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("🚢 Generating export balance report...")
	}
	if err := cmd.writeExportReport(date, exports); err != nil {
		return fmt.Errorf("failed to generate export report: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("📊 Generating buffer penetration report...")
	}
	if err := cmd.writeBufferReport(date, skus); err != nil {
		return fmt.Errorf("failed to generate buffer report: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("🚚 Generating dispatch history...")
	}
	if err := cmd.writeDispatchHistory(skus); err != nil {
		return fmt.Errorf("failed to generate dispatch history: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("⏱️  Generating curing cycle times...")
	}
	if err := cmd.writeCureTimes(skus); err != nil {
		return fmt.Errorf("failed to generate cure times: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("🔧 Generating daily mould report...")
	}
	if err := cmd.writeMouldReport(date, skus); err != nil {
		return fmt.Errorf("failed to generate mould report: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("✍️  Generating manual overrides...")
	}
	if err := cmd.writeManualOverrides(skus); err != nil {
		return fmt.Errorf("failed to generate manual overrides: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Printf("✅ Sample dataset generated in %s\n", cmd.config.OutputDir)
	}
	return nil
}

// resolveDate parses the configured date, defaulting to today.
func (cmd *GenerateCommand) resolveDate() (time.Time, error) {
	if cmd.config.Date == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(services.DateFormat, cmd.config.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -date %q: expected DD.MM.YYYY", cmd.config.Date)
	}
	return date, nil
}

// generateBandwiseSKUs creates the OE/ST/RE fleet, round-robined across
// the three bandwise demand channels.
func (cmd *GenerateCommand) generateBandwiseSKUs() []sampleSKU {
	channels := []struct {
		market   entities.Market
		location string
	}{
		{entities.MarketRE, samplePlant + "_FG10"},
		{entities.MarketOE, samplePlant + "_OE10"},
		{entities.MarketST, samplePlant + "_ST10"},
	}

	skus := make([]sampleSKU, 0, sampleSKUCount)
	for len(skus) < sampleSKUCount {
		sku := cmd.generateSKU()
		channel := channels[len(skus)%len(channels)]
		sku.Market = channel.market
		sku.Location = channel.location
		skus = append(skus, sku)
	}
	return skus
}

// generateExportSKUs creates the export-channel fleet.
func (cmd *GenerateCommand) generateExportSKUs() []sampleSKU {
	exports := make([]sampleSKU, 0, 4)
	for len(exports) < 4 {
		sku := cmd.generateSKU()
		sku.Market = entities.MarketEXP
		exports = append(exports, sku)
	}
	return exports
}

// generateSKU creates one tyre SKU. The rim size sits at the 9th and
// 10th code characters, where downstream reporting reads it.
func (cmd *GenerateCommand) generateSKU() sampleSKU {
	widths := []string{"155", "165", "175", "185", "195", "205", "215", "225", "235"}
	aspects := []string{"45", "50", "55", "60", "65", "70"}
	patterns := []string{"Touring", "Highway", "City", "Sport", "Eco", "All Season"}

	width := cmd.faker.RandomString(widths)
	aspect := cmd.faker.RandomString(aspects)
	rim := cmd.faker.Number(13, 18)

	return sampleSKU{
		Code:        fmt.Sprintf("TY%sR%s%02d%s", width, aspect, rim, cmd.faker.Numerify("TL##")),
		Description: fmt.Sprintf("%s/%s R%d %s", width, aspect, rim, cmd.faker.RandomString(patterns)),
	}
}

// createFile creates path, making parent directories as needed.
func (cmd *GenerateCommand) createFile(parts ...string) (*os.File, error) {
	path := filepath.Join(append([]string{cmd.config.OutputDir}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// writeBandwiseReport creates the BOR demand CSV. A few rows carry no
// virtual norm, leaving their adjusted targets unset downstream.
func (cmd *GenerateCommand) writeBandwiseReport(date time.Time, skus []sampleSKU) error {
	file, err := cmd.createFile("Vectordata", "BOR",
		fmt.Sprintf("BORColorBandwiseReport__%s.csv", date.Format("02-01-2006")))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "SKUCode,SKU Description,Location Code,Norm,Virtual Norm,Stock")
	for _, sku := range skus {
		norm := cmd.faker.Number(40, 200)
		virtualNorm := fmt.Sprintf("%d", cmd.faker.Number(30, 220))
		if cmd.faker.Number(1, 10) == 1 {
			virtualNorm = ""
		}
		stock := cmd.faker.Number(0, 260)

		fmt.Fprintf(file, "%s,%s,%s,%d,%s,%d\n",
			sku.Code, sku.Description, sku.Location, norm, virtualNorm, stock)
	}
	return nil
}

// writeExportReport creates the BMR workbook. The real report stacks a
// title row above the header and covers every plant, so the sample
// carries a foreign-plant row too.
func (cmd *GenerateCommand) writeExportReport(date time.Time, exports []sampleSKU) error {
	path := filepath.Join(cmd.config.OutputDir, "Vectordata", "BMR",
		fmt.Sprintf("Prod_OverAll_BMReport__%s.xlsx", date.Format("02_01_2006")))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Production Overall Balance Report")
	headers := []string{"Item Code", "Item Description", "Plant Code"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
	}

	row := 3
	for _, sku := range exports {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sku.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sku.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), samplePlant)
		row++
	}
	foreign := cmd.generateSKU()
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), foreign.Code)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), foreign.Description)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "1400")

	return f.SaveAs(path)
}

// writeBufferReport creates the BPR CSV serving both reads: top-SKU
// flags joined by location code and stockout colours pivoted by
// location type.
func (cmd *GenerateCommand) writeBufferReport(date time.Time, skus []sampleSKU) error {
	file, err := cmd.createFile("Vectordata", "BPR",
		fmt.Sprintf("BufferPenetrationReport__%s.csv", date.Format("02-01-2006")))
	if err != nil {
		return err
	}
	defer file.Close()

	locationTypes := []string{"JIT", "Depot", "Depot Mobility", "Feeder", "PWH"}
	colours := []string{"Black", "Red", "Green", "Yellow"}

	fmt.Fprintln(file, "SKUCode,Location Code,Location Type,Top SKU,On Hand Inv. Color")
	for _, sku := range skus {
		topSKU := "F"
		if cmd.faker.Number(1, 10) <= 3 {
			topSKU = "T"
		}
		rows := cmd.faker.Number(1, 3)
		for i := 0; i < rows; i++ {
			fmt.Fprintf(file, "%s,%s,%s,%s,%s\n",
				sku.Code,
				sku.Location,
				cmd.faker.RandomString(locationTypes),
				topSKU,
				cmd.faker.RandomString(colours))
		}
	}
	return nil
}

// writeDispatchHistory creates DISPATCH1.csv. ASCII is valid
// ISO-8859-1, so no re-encoding is needed.
func (cmd *GenerateCommand) writeDispatchHistory(skus []sampleSKU) error {
	file, err := cmd.createFile("DISPATCH1.csv")
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "Material,Plant,Quantity,Amt.in loc.cur.")
	for _, sku := range skus {
		rows := cmd.faker.Number(1, 3)
		for i := 0; i < rows; i++ {
			quantity := cmd.faker.Number(5, 60)
			unitPrice := cmd.faker.Float64Range(2500, 5500)
			fmt.Fprintf(file, "%s,%s,%d,%.2f\n",
				sku.Code, samplePlant, quantity, float64(quantity)*unitPrice)
		}
	}
	return nil
}

// writeCureTimes creates the curing cycle time CSV.
func (cmd *GenerateCommand) writeCureTimes(skus []sampleSKU) error {
	file, err := cmd.createFile("curing_cycletime.csv")
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "SKUCode,Cure Time")
	for _, sku := range skus {
		fmt.Fprintf(file, "%s,%.1f\n", sku.Code, cmd.faker.Float64Range(10, 20))
	}
	return nil
}

// writeMouldReport creates the daily mould report: presses for roughly
// half the fleet plus one ghost SKU running without a demand row.
func (cmd *GenerateCommand) writeMouldReport(date time.Time, skus []sampleSKU) error {
	file, err := cmd.createFile("Vectordata", "Daily Mould Report",
		fmt.Sprintf("%s MouldDetails.csv", date.Format("02012006")))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "Sapcode,WCNAME,Mould life,Target life")
	press := 1
	for i, sku := range skus {
		if i%2 != 0 {
			continue
		}
		presses := cmd.faker.Number(1, 3)
		for p := 0; p < presses; p++ {
			fmt.Fprintf(file, "%s,CURING-%02d,%d,%d\n",
				sku.Code, press, cmd.faker.Number(1500, 4950), 5000)
			press++
		}
	}

	ghost := cmd.generateSKU()
	fmt.Fprintf(file, "%s,CURING-%02d,%d,%d\n",
		ghost.Code, press, cmd.faker.Number(1500, 4950), 5000)
	return nil
}

// writeManualOverrides creates the manual demand workbook with one
// highest-priority entry and one ordinary entry.
func (cmd *GenerateCommand) writeManualOverrides(skus []sampleSKU) error {
	path := filepath.Join(cmd.config.OutputDir, "manual_frontend_demand.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"SKU Code", "SKU Description", "Market", "Quantity", "Highest Priority"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
	}

	for i, sku := range skus[:2] {
		row := i + 2
		highest := 0
		if i == 0 {
			highest = 1
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sku.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sku.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(sku.Market))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cmd.faker.Number(20, 80))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), highest)
	}

	return f.SaveAs(path)
}
