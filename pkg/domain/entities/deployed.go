package entities

// DeployedRecord is the Stage 2 output row: a scored record extended with
// live machine-deployment metrics. Ghost rows (machine data without
// demand) carry zero-valued demand fields and IsGhostSKU=true; reports
// render those fields as blanks.
type DeployedRecord struct {
	ScoredRecord

	MachineCount   int
	AvgMouldHealth *float64 // nil when no machine reports a usable target life

	ProxyPenetration float64
	ProxyRank        int

	CriticalGap      bool
	ExcessProduction bool
	MouldAlert       bool
	IsGhostSKU       bool
}
