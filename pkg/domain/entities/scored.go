package entities

// ScoredRecord is the Stage 1 output row for one (SKU, Market) pair:
// the demand record plus every derived scoring column. Created fresh per
// analysis date and immutable once the stage completes; downstream stages
// copy it and append, never mutate.
type ScoredRecord struct {
	SKU         SKUCode
	Description string
	Size        int // rim inches from the SKU code, 0 when not encoded
	Market      Market

	Norm           float64
	VirtualNorm    *float64
	AdjustedTarget *float64 // nil for export rows and absent virtual norms
	Stock          float64
	Requirement    float64  // always >= 0
	Penetration    *float64 // nil when AdjustedTarget is nil; >100 signals overstock

	NormPenetration float64
	NormRequirement float64

	TopSKU       bool
	MarketWeight float64

	InventoryScore     float64
	NormInventoryScore float64

	ASP              float64
	CureTime         float64 // minutes, after the default fallback
	DailyCure        int
	RevenuePotential float64
	PricePriority    float64

	PriorityScore      float64
	ConsolidatedScore  float64 // Tier 1: demand + inventory
	ConsolidatedScoreP float64 // Tier 2: demand + inventory + price

	RankConsolidated  int
	RankConsolidatedP int
}

// PenetrationValue returns the penetration for ordering purposes, with
// nil reading as 0.
func (r *ScoredRecord) PenetrationValue() float64 {
	if r.Penetration == nil {
		return 0
	}
	return *r.Penetration
}
