package config

import (
	"math"
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	result := Validate(Default())
	if !result.IsValid() {
		t.Fatalf("default configuration should validate, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("default configuration should produce no warnings, got %v", result.Warnings)
	}
}

func TestMaxAutomatedScoreDefaults(t *testing.T) {
	// Largest market weight 4 with every normalized component at 1:
	// priority = 4*0.25 + 0.35 + 0.30 + 0.10 = 1.75, tier 2 =
	// 1.75*0.4 + 0.3 + 0.3 = 1.3.
	got := Default().MaxAutomatedScore()
	if math.Abs(got-1.3) > 1e-9 {
		t.Errorf("max automated score: want 1.3, got %g", got)
	}
}

func TestValidateRejectsWeakBoostBase(t *testing.T) {
	w := Default()
	w.BoostBase = 1.0 // below the automated ceiling of 1.3

	result := Validate(w)
	if result.IsValid() {
		t.Fatal("boost base below the automated ceiling should be rejected")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "boost base") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors should name the boost base, got %v", result.Errors)
	}
}

func TestValidateRejectsNonPositiveConstants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Weights)
	}{
		{"zero efficiency", func(w *Weights) { w.EfficiencyFactor = 0 }},
		{"negative efficiency", func(w *Weights) { w.EfficiencyFactor = -0.5 }},
		{"zero cure time", func(w *Weights) { w.DefaultCureTime = 0 }},
		{"negative asp", func(w *Weights) { w.DefaultASP = -1 }},
		{"negative machine penalty", func(w *Weights) { w.MachineCountPenalty = -0.05 }},
		{"negative overstock factor", func(w *Weights) { w.OverstockPenaltyFactor = -1 }},
		{"negative gap rank", func(w *Weights) { w.CriticalGapRank = -1 }},
		{"negative boost multiplier", func(w *Weights) { w.BoostMultiplier = -1 }},
		{"empty market table", func(w *Weights) { w.MarketWeights = nil }},
		{"empty location table", func(w *Weights) { w.LocationWeights = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Default()
			tc.mutate(&w)
			if Validate(w).IsValid() {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateWarnsOnGroupDrift(t *testing.T) {
	w := Default()
	w.Tier1Demand = 0.7 // tier 1 now sums to 1.1

	result := Validate(w)
	if !result.IsValid() {
		t.Fatalf("drifted group should warn, not error: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "tier-1") {
		t.Errorf("want one tier-1 warning, got %v", result.Warnings)
	}
}
