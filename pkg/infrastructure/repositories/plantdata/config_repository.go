package plantdata

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
)

const (
	stage1Sheet = "Stage1_Config"
	stage2Sheet = "Stage2_Config"
)

// configColumns is the header of both config sheets. Planners fill the
// User_Input column; a blank cell keeps the default.
var configColumns = []string{"Parameter", "Default_Value", "User_Input"}

// ConfigRepository reads weight overrides from the planner-facing
// config workbook and writes its blank template.
type ConfigRepository struct{}

// NewConfigRepository creates a config workbook repository
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// Load reads the workbook at path and applies its parameters on top of
// the built-in defaults. A non-empty User_Input cell wins over the
// sheet's Default_Value; unknown parameter names are rejected.
func (r *ConfigRepository) Load(path string) (config.Weights, error) {
	weights := config.Default()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return weights, fmt.Errorf("failed to open config workbook %s: %w", path, err)
	}
	defer f.Close()

	for _, sheet := range []string{stage1Sheet, stage2Sheet} {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return weights, fmt.Errorf("config workbook sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			return weights, fmt.Errorf("config workbook sheet %s: missing header row", sheet)
		}
		for i, row := range rows[1:] {
			name := cell(row, 0)
			if name == "" {
				continue
			}
			raw := cell(row, 2)
			if raw == "" {
				raw = cell(row, 1)
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return weights, fmt.Errorf("config sheet %s row %d: parameter %s: invalid value %q",
					sheet, i+2, name, raw)
			}
			if err := applyParameter(&weights, name, value); err != nil {
				return weights, fmt.Errorf("config sheet %s row %d: %w", sheet, i+2, err)
			}
		}
	}
	return weights, nil
}

// WriteTemplate writes a fresh config workbook with every parameter at
// its default and an empty User_Input column.
func (r *ConfigRepository) WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", stage1Sheet)
	if _, err := f.NewSheet(stage2Sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", stage2Sheet, err)
	}

	defaults := config.Default()
	if err := writeParameterSheet(f, stage1Sheet, stage1Parameters(defaults)); err != nil {
		return err
	}
	if err := writeParameterSheet(f, stage2Sheet, stage2Parameters(defaults)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write config workbook %s: %w", path, err)
	}
	return nil
}

type parameterRow struct {
	Name    string
	Default float64
}

func stage1Parameters(w config.Weights) []parameterRow {
	return []parameterRow{
		{"MARKET_WEIGHTS_OE", w.MarketWeights[entities.MarketOE]},
		{"MARKET_WEIGHTS_ST", w.MarketWeights[entities.MarketST]},
		{"MARKET_WEIGHTS_EXP", w.MarketWeights[entities.MarketEXP]},
		{"MARKET_WEIGHTS_RE", w.MarketWeights[entities.MarketRE]},
		{"LOCATION_WEIGHTS_JIT", w.LocationWeights[entities.LocationJIT]},
		{"LOCATION_WEIGHTS_Depot", w.LocationWeights[entities.LocationDepot]},
		{"LOCATION_WEIGHTS_Depot_Mobility", w.LocationWeights[entities.LocationDepotMobility]},
		{"LOCATION_WEIGHTS_Feeder", w.LocationWeights[entities.LocationFeeder]},
		{"LOCATION_WEIGHTS_PWH", w.LocationWeights[entities.LocationPWH]},
		{"SCORING_market_weightage", w.MarketWeightage},
		{"SCORING_penetration_weightage", w.PenetrationWeightage},
		{"SCORING_requirement_weightage", w.RequirementWeightage},
		{"SCORING_top_sku_weightage", w.TopSKUWeightage},
		{"INVENTORY_BLACK_FACTOR", w.InventoryBlackFactor},
		{"INVENTORY_RED_FACTOR", w.InventoryRedFactor},
		{"TIER1_demand_priority", w.Tier1Demand},
		{"TIER1_inventory_priority", w.Tier1Inventory},
		{"TIER2_demand_priority", w.Tier2Demand},
		{"TIER2_inventory_priority", w.Tier2Inventory},
		{"TIER2_price_priority", w.Tier2Price},
		{"EFFICIENCY_FACTOR", w.EfficiencyFactor},
		{"DEFAULT_ASP", w.DefaultASP},
		{"DEFAULT_CURE_TIME", w.DefaultCureTime},
	}
}

func stage2Parameters(w config.Weights) []parameterRow {
	return []parameterRow{
		{"MOULD_LIFE_THRESHOLD", w.MouldLifeThreshold},
		{"MACHINE_COUNT_PENALTY", w.MachineCountPenalty},
		{"CRITICAL_GAP_RANK", float64(w.CriticalGapRank)},
		{"EXCESS_PRODUCTION_RANK", float64(w.ExcessProductionRank)},
		{"EXCESS_MACHINE_COUNT", float64(w.ExcessMachineCount)},
		{"BOOST_BASE", w.BoostBase},
		{"BOOST_MULTIPLIER", w.BoostMultiplier},
		{"OVERSTOCK_PENALTY_FACTOR", w.OverstockPenaltyFactor},
	}
}

func writeParameterSheet(f *excelize.File, sheet string, params []parameterRow) error {
	for col, name := range configColumns {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, name); err != nil {
			return fmt.Errorf("failed to write header on %s: %w", sheet, err)
		}
	}

	for i, param := range params {
		nameCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address parameter cell: %w", err)
		}
		if err := f.SetCellValue(sheet, nameCell, param.Name); err != nil {
			return fmt.Errorf("failed to write parameter %s: %w", param.Name, err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return fmt.Errorf("failed to address default cell: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, param.Default); err != nil {
			return fmt.Errorf("failed to write default for %s: %w", param.Name, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 34); err != nil {
		return fmt.Errorf("failed to size columns on %s: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 14); err != nil {
		return fmt.Errorf("failed to size columns on %s: %w", sheet, err)
	}
	return nil
}

func applyParameter(w *config.Weights, name string, value float64) error {
	switch name {
	case "MARKET_WEIGHTS_OE":
		w.MarketWeights[entities.MarketOE] = value
	case "MARKET_WEIGHTS_ST":
		w.MarketWeights[entities.MarketST] = value
	case "MARKET_WEIGHTS_EXP":
		w.MarketWeights[entities.MarketEXP] = value
	case "MARKET_WEIGHTS_RE":
		w.MarketWeights[entities.MarketRE] = value
	case "LOCATION_WEIGHTS_JIT":
		w.LocationWeights[entities.LocationJIT] = value
	case "LOCATION_WEIGHTS_Depot":
		w.LocationWeights[entities.LocationDepot] = value
	case "LOCATION_WEIGHTS_Depot_Mobility":
		w.LocationWeights[entities.LocationDepotMobility] = value
	case "LOCATION_WEIGHTS_Feeder":
		w.LocationWeights[entities.LocationFeeder] = value
	case "LOCATION_WEIGHTS_PWH":
		w.LocationWeights[entities.LocationPWH] = value
	case "SCORING_market_weightage":
		w.MarketWeightage = value
	case "SCORING_penetration_weightage":
		w.PenetrationWeightage = value
	case "SCORING_requirement_weightage":
		w.RequirementWeightage = value
	case "SCORING_top_sku_weightage":
		w.TopSKUWeightage = value
	case "INVENTORY_BLACK_FACTOR":
		w.InventoryBlackFactor = value
	case "INVENTORY_RED_FACTOR":
		w.InventoryRedFactor = value
	case "TIER1_demand_priority":
		w.Tier1Demand = value
	case "TIER1_inventory_priority":
		w.Tier1Inventory = value
	case "TIER2_demand_priority":
		w.Tier2Demand = value
	case "TIER2_inventory_priority":
		w.Tier2Inventory = value
	case "TIER2_price_priority":
		w.Tier2Price = value
	case "EFFICIENCY_FACTOR":
		w.EfficiencyFactor = value
	case "DEFAULT_ASP":
		w.DefaultASP = value
	case "DEFAULT_CURE_TIME":
		w.DefaultCureTime = value
	case "MOULD_LIFE_THRESHOLD":
		w.MouldLifeThreshold = value
	case "MACHINE_COUNT_PENALTY":
		w.MachineCountPenalty = value
	case "CRITICAL_GAP_RANK":
		w.CriticalGapRank = int(value)
	case "EXCESS_PRODUCTION_RANK":
		w.ExcessProductionRank = int(value)
	case "EXCESS_MACHINE_COUNT":
		w.ExcessMachineCount = int(value)
	case "BOOST_BASE":
		w.BoostBase = value
	case "BOOST_MULTIPLIER":
		w.BoostMultiplier = value
	case "OVERSTOCK_PENALTY_FACTOR":
		w.OverstockPenaltyFactor = value
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}
