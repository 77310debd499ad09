package dto

import (
	"time"

	"vectorplan/pkg/domain/entities"
)

// DateResult contains the complete pipeline output for one analysis date.
// Scored is always populated; Deployed and Hybrid are populated up to the
// requested stage.
type DateResult struct {
	RunID string
	Date  time.Time
	Stage int

	Scored   []*entities.ScoredRecord
	Deployed []*entities.DeployedRecord
	Hybrid   []*entities.HybridRecord

	Summary Summary
}

// FinalCount returns the number of records at the deepest stage that ran.
func (r *DateResult) FinalCount() int {
	switch {
	case r.Stage >= 3:
		return len(r.Hybrid)
	case r.Stage == 2:
		return len(r.Deployed)
	default:
		return len(r.Scored)
	}
}

// Summary carries the executive counts printed after a run and logged
// per date.
type Summary struct {
	ScoredRecords  int
	MachinesActive int
	GhostSKUs      int
	CriticalGaps   int
	ExcessRunning  int
	MouldAlerts    int
	ManualRows     int
	HighestManual  int
	OverstockRows  int
	HybridRows     int

	// Degraded lists the optional sources that were unavailable and fell
	// back to neutral values for this date.
	Degraded []string
}

// RangeResult aggregates a multi-date run. Dates whose required sources
// were unavailable are recorded in Skipped rather than failing the run.
type RangeResult struct {
	RunID   string
	Stage   int
	Results []*DateResult
	Skipped []SkippedDate
}

// SkippedDate records why one date in a range produced no output.
type SkippedDate struct {
	Date   time.Time
	Reason string
}
