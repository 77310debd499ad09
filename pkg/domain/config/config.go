package config

import "vectorplan/pkg/domain/entities"

// Weights is the full scoring configuration consumed by the pipeline
// stages. It is an explicit value passed into each stage call, never
// process-global state, so concurrent per-date runs cannot interfere.
// Groups of weightages are expected to sum to 1 but this is not enforced.
type Weights struct {
	// MarketWeights orders demand channels by importance (higher = more
	// urgent). The table is configuration, not a hard ordering.
	MarketWeights map[entities.Market]float64

	// LocationWeights orders warehouse location types for stockout scoring.
	LocationWeights map[entities.LocationType]float64

	// PriorityScore weightages.
	MarketWeightage      float64
	PenetrationWeightage float64
	RequirementWeightage float64
	TopSKUWeightage      float64

	// Stockout colour factors; Black outweighs Red at the same location.
	InventoryBlackFactor float64
	InventoryRedFactor   float64

	// Tier 1 consolidated score: demand + inventory.
	Tier1Demand    float64
	Tier1Inventory float64

	// Tier 2 consolidated score: demand + inventory + price.
	Tier2Demand    float64
	Tier2Inventory float64
	Tier2Price     float64

	// Production constants.
	EfficiencyFactor float64
	DefaultASP       float64
	DefaultCureTime  float64 // minutes

	// Deployment adjustment.
	MachineCountPenalty  float64
	CriticalGapRank      int
	ExcessProductionRank int
	ExcessMachineCount   int
	MouldLifeThreshold   float64

	// Manual override super-boost and overstock handling.
	BoostBase              float64
	BoostMultiplier        float64
	OverstockPenaltyFactor float64
}

// Default returns the standard plant configuration.
func Default() Weights {
	return Weights{
		MarketWeights: map[entities.Market]float64{
			entities.MarketOE:  4,
			entities.MarketST:  3,
			entities.MarketEXP: 2,
			entities.MarketRE:  1,
		},
		LocationWeights: map[entities.LocationType]float64{
			entities.LocationJIT:           5,
			entities.LocationDepot:         4,
			entities.LocationDepotMobility: 3,
			entities.LocationFeeder:        2,
			entities.LocationPWH:           1,
		},

		MarketWeightage:      0.25,
		PenetrationWeightage: 0.35,
		RequirementWeightage: 0.30,
		TopSKUWeightage:      0.10,

		InventoryBlackFactor: 1.0,
		InventoryRedFactor:   0.5,

		Tier1Demand:    0.6,
		Tier1Inventory: 0.4,

		Tier2Demand:    0.4,
		Tier2Inventory: 0.3,
		Tier2Price:     0.3,

		EfficiencyFactor: 0.9,
		DefaultASP:       3000,
		DefaultCureTime:  15,

		MachineCountPenalty:  0.05,
		CriticalGapRank:      50,
		ExcessProductionRank: 200,
		ExcessMachineCount:   2,
		MouldLifeThreshold:   0.9,

		BoostBase:              10.0,
		BoostMultiplier:        1.0,
		OverstockPenaltyFactor: 0.0,
	}
}

// MaxMarketWeight returns the largest configured market weight.
func (w Weights) MaxMarketWeight() float64 {
	max := 0.0
	for _, weight := range w.MarketWeights {
		if weight > max {
			max = weight
		}
	}
	return max
}

// MaxAutomatedScore returns the theoretical maximum Tier-2 score an
// automated row can reach under these weights: the largest market weight
// with every normalized component at 1.0. The super-boost contract
// requires BoostBase to exceed this.
func (w Weights) MaxAutomatedScore() float64 {
	maxPriority := w.MaxMarketWeight()*w.MarketWeightage +
		w.PenetrationWeightage +
		w.RequirementWeightage +
		w.TopSKUWeightage
	return maxPriority*w.Tier2Demand + w.Tier2Inventory + w.Tier2Price
}
