package entities

// HybridRecord is the Stage 3 output row: the union of automated deployed
// records and manual overrides, carrying the strategic score and the
// final rank. FinalRank is the only externally consumed ordering key and
// is recomputed from scratch every run.
type HybridRecord struct {
	DeployedRecord

	Source          Source
	HighestPriority bool // manual rows only

	// ManualQuantity is the quantity requested by the manual row; for
	// manual rows Requirement mirrors it so the shared tie-break chain
	// orders equal-score manual rows by quantity.
	ManualQuantity float64

	// VectorRequirement preserves the automated requirement for a SKU a
	// manual row superseded (0 when there was none).
	VectorRequirement float64

	ManualScore float64
	ManualRank  int // 1-based among manual rows, 0 for automated rows

	StrategicScore float64
	Overstock      bool

	// HasDeployment is false for manual rows with no matching automated
	// SKU; their deployment fields render as blanks.
	HasDeployment bool

	FinalRank int
}
