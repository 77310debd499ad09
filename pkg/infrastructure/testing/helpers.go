package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/infrastructure/repositories/memory"
)

// PlantRepositories bundles the six in-memory sources a pipeline run reads.
type PlantRepositories struct {
	Demand   *memory.DemandRepository
	Stockout *memory.StockoutRepository
	Dispatch *memory.DispatchRepository
	CureTime *memory.CureTimeRepository
	Mould    *memory.MouldRepository
	Manual   *memory.ManualRepository
}

func floatPtr(v float64) *float64 { return &v }

// BuildPlantTestData builds a representative one-day plant scenario: four
// markets of demand, stockouts at two location types, dispatch history for
// price averaging, cure times, machine assignments including a ghost SKU,
// and one manual override flagged highest priority.
func BuildPlantTestData(date time.Time) *PlantRepositories {
	repos := &PlantRepositories{
		Demand:   memory.NewDemandRepository(),
		Stockout: memory.NewStockoutRepository(),
		Dispatch: memory.NewDispatchRepository(),
		CureTime: memory.NewCureTimeRepository(),
		Mould:    memory.NewMouldRepository(),
		Manual:   memory.NewManualRepository(),
	}

	repos.Demand.LoadDemandRecords(date, []*entities.DemandRecord{
		{
			SKU:          "TY195R5516TLA1",
			Description:  "195/55 R16 Touring",
			Market:       entities.MarketRE,
			LocationCode: "1300_FG10",
			Norm:         120,
			VirtualNorm:  floatPtr(100),
			Stock:        80,
			TopSKU:       true,
		},
		{
			SKU:          "TY215R6017TLB2",
			Description:  "215/60 R17 Highway",
			Market:       entities.MarketOE,
			LocationCode: "1300_OE10",
			Norm:         90,
			VirtualNorm:  floatPtr(90),
			Stock:        30,
			TopSKU:       false,
		},
		{
			SKU:          "TY185R6515TLC3",
			Description:  "185/65 R15 City",
			Market:       entities.MarketST,
			LocationCode: "1300_ST10",
			Norm:         60,
			VirtualNorm:  floatPtr(50),
			Stock:        70,
			TopSKU:       false,
		},
		{
			SKU:          "TY235R4518TLD4",
			Description:  "235/45 R18 Export",
			Market:       entities.MarketEXP,
			LocationCode: "1300",
			Norm:         0,
			VirtualNorm:  nil,
			Stock:        0,
			TopSKU:       true,
		},
	})

	repos.Stockout.LoadStockoutCounts(date, []*entities.StockoutCount{
		{SKU: "TY195R5516TLA1", LocationType: entities.LocationJIT, BlackCount: 2, RedCount: 1},
		{SKU: "TY215R6017TLB2", LocationType: entities.LocationDepot, BlackCount: 0, RedCount: 3},
	})

	repos.Dispatch.LoadDispatchRecords([]*entities.DispatchRecord{
		{
			SKU:      "TY195R5516TLA1",
			Quantity: decimal.NewFromInt(10),
			Amount:   decimal.NewFromInt(42000),
		},
		{
			SKU:      "TY195R5516TLA1",
			Quantity: decimal.NewFromInt(5),
			Amount:   decimal.NewFromInt(19000),
		},
		{
			SKU:      "TY215R6017TLB2",
			Quantity: decimal.NewFromInt(8),
			Amount:   decimal.NewFromInt(44000),
		},
	})

	repos.CureTime.LoadCureTimes([]*entities.CureTimeRecord{
		{SKU: "TY195R5516TLA1", CureMinutes: 12.5},
		{SKU: "TY215R6017TLB2", CureMinutes: 14},
		{SKU: "TY185R6515TLC3", CureMinutes: 11},
	})

	repos.Mould.LoadMachineAssignments(date, []*entities.MachineAssignment{
		{Machine: "CURING-01", SKU: "TY195R5516TLA1", MouldLife: 4000, TargetLife: 5000},
		{Machine: "CURING-02", SKU: "TY195R5516TLA1", MouldLife: 4800, TargetLife: 5000},
		{Machine: "CURING-03", SKU: "TY215R6017TLB2", MouldLife: 4900, TargetLife: 5000},
		// Ghost: running on a press without a demand row today.
		{Machine: "CURING-04", SKU: "TY205R5017TLE5", MouldLife: 2500, TargetLife: 5000},
	})

	repos.Manual.LoadManualEntries([]*entities.ManualEntry{
		{
			SKU:             "TY215R6017TLB2",
			Description:     "215/60 R17 Highway",
			Market:          entities.MarketOE,
			Quantity:        40,
			HighestPriority: true,
		},
	})

	return repos
}

// BuildSimpleTestData creates a minimal two-SKU scenario for basic tests.
// Optional sources are loaded empty, not left unavailable.
func BuildSimpleTestData(date time.Time) *PlantRepositories {
	repos := &PlantRepositories{
		Demand:   memory.NewDemandRepository(),
		Stockout: memory.NewStockoutRepository(),
		Dispatch: memory.NewDispatchRepository(),
		CureTime: memory.NewCureTimeRepository(),
		Mould:    memory.NewMouldRepository(),
		Manual:   memory.NewManualRepository(),
	}

	repos.Demand.LoadDemandRecords(date, []*entities.DemandRecord{
		{
			SKU:          "TY195R5516TLA1",
			Market:       entities.MarketRE,
			LocationCode: "1300_FG10",
			Norm:         100,
			VirtualNorm:  floatPtr(100),
			Stock:        20,
		},
		{
			SKU:          "TY215R6017TLB2",
			Market:       entities.MarketOE,
			LocationCode: "1300_OE10",
			Norm:         50,
			VirtualNorm:  floatPtr(50),
			Stock:        60,
		},
	})

	repos.Stockout.LoadStockoutCounts(date, nil)
	repos.Dispatch.LoadDispatchRecords(nil)
	repos.CureTime.LoadCureTimes(nil)
	repos.Mould.LoadMachineAssignments(date, nil)
	repos.Manual.LoadManualEntries(nil)

	return repos
}
