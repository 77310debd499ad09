package config

import (
	"fmt"
	"math"
)

// ValidationResult contains the results of weight validation
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the configuration can be used at all;
// warnings do not block a run.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks a weight configuration before the pipeline runs.
// A broken super-boost contract (manual scores must exceed the maximum
// attainable automated Tier-2 score) is an error: accepting such a
// configuration would silently break the manual-override ordering
// guarantee the merge stage relies on.
func Validate(w Weights) *ValidationResult {
	result := &ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	if len(w.MarketWeights) == 0 {
		result.Errors = append(result.Errors, "market weight table is empty")
	}
	if len(w.LocationWeights) == 0 {
		result.Errors = append(result.Errors, "location weight table is empty")
	}

	if w.EfficiencyFactor <= 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("efficiency factor must be positive, got %g", w.EfficiencyFactor))
	}
	if w.DefaultCureTime <= 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("default cure time must be positive, got %g", w.DefaultCureTime))
	}
	if w.DefaultASP < 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("default ASP must not be negative, got %g", w.DefaultASP))
	}
	if w.MachineCountPenalty < 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("machine count penalty must not be negative, got %g", w.MachineCountPenalty))
	}
	if w.OverstockPenaltyFactor < 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("overstock penalty factor must not be negative, got %g", w.OverstockPenaltyFactor))
	}
	if w.CriticalGapRank < 0 || w.ExcessProductionRank < 0 || w.ExcessMachineCount < 0 {
		result.Errors = append(result.Errors, "gap analysis thresholds must not be negative")
	}
	if w.BoostMultiplier < 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("boost multiplier must not be negative, got %g", w.BoostMultiplier))
	}

	maxAutomated := w.MaxAutomatedScore()
	if w.BoostBase <= maxAutomated {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"boost base %g does not exceed the maximum automated score %g; manual overrides would not sort first",
			w.BoostBase, maxAutomated))
	}

	checkGroupSum(result, "scoring weightages",
		w.MarketWeightage+w.PenetrationWeightage+w.RequirementWeightage+w.TopSKUWeightage)
	checkGroupSum(result, "tier-1 weightages", w.Tier1Demand+w.Tier1Inventory)
	checkGroupSum(result, "tier-2 weightages", w.Tier2Demand+w.Tier2Inventory+w.Tier2Price)

	return result
}

// checkGroupSum warns when a weighted group drifts from 1.0; drift is
// allowed (caller responsibility) but usually unintended.
func checkGroupSum(result *ValidationResult, name string, sum float64) {
	if math.Abs(sum-1.0) > 1e-9 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s sum to %g, not 1.0", name, sum))
	}
}
