package services

import (
	"context"
	"testing"

	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
)

func overrideDeployed() []*entities.DeployedRecord {
	return []*entities.DeployedRecord{
		{
			ScoredRecord: entities.ScoredRecord{
				SKU: "TY195R5516TLA1", Market: entities.MarketOE,
				ConsolidatedScoreP: 1.2, Requirement: 60, Penetration: fp(40),
			},
			MachineCount: 2, ProxyRank: 1,
		},
		{
			ScoredRecord: entities.ScoredRecord{
				SKU: "TY215R6017TLB2", Market: entities.MarketST,
				ConsolidatedScoreP: 0.9, Requirement: 35, Penetration: fp(20),
			},
			MachineCount: 3, AvgMouldHealth: fp(0.7), ProxyRank: 2,
		},
		{
			ScoredRecord: entities.ScoredRecord{
				SKU: "TY185R6515TLC3", Market: entities.MarketRE,
				ConsolidatedScoreP: 1.5, Requirement: 0, Penetration: fp(150),
			},
			ProxyRank: 3,
		},
		{
			ScoredRecord: entities.ScoredRecord{
				SKU: "TY235R4518TLD4", Market: entities.MarketRE,
				ConsolidatedScoreP: 1.4, Requirement: 0, Penetration: fp(120),
			},
			ProxyRank: 4,
		},
	}
}

func overrideManual() []*entities.ManualEntry {
	return []*entities.ManualEntry{
		{SKU: "TY215R6017TLB2", Market: entities.MarketST, Quantity: 40, HighestPriority: true},
		{SKU: "TY999R9918TLX9", Market: entities.MarketOE, Quantity: 25},
	}
}

func hybridFor(t *testing.T, rows []*entities.HybridRecord, sku entities.SKUCode) *entities.HybridRecord {
	t.Helper()
	for _, h := range rows {
		if h.SKU == sku {
			return h
		}
	}
	t.Fatalf("no hybrid record for %s", sku)
	return nil
}

func TestOverrideService_MergeOrdering(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), config.Default())

	// Superseded automated row disappears, so 4 deployed + 2 manual - 1.
	if len(rows) != 5 {
		t.Fatalf("expected 5 hybrid rows, got %d", len(rows))
	}

	// Highest-priority manual, then plain manual, then automated by
	// score, then the overstock partition by ascending penetration.
	wantOrder := []entities.SKUCode{
		"TY215R6017TLB2", // manual, highest priority, score 11
		"TY999R9918TLX9", // manual, score 10
		"TY195R5516TLA1", // automated, 1.2
		"TY235R4518TLD4", // overstock, penetration 120
		"TY185R6515TLC3", // overstock, penetration 150
	}
	for i, want := range wantOrder {
		if rows[i].SKU != want {
			t.Errorf("position %d: want %s, got %s", i, want, rows[i].SKU)
		}
		if rows[i].FinalRank != i+1 {
			t.Errorf("position %d: FinalRank %d, must be contiguous from 1", i, rows[i].FinalRank)
		}
	}
}

func TestOverrideService_SuperBoost(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), config.Default())

	hp := hybridFor(t, rows, "TY215R6017TLB2")
	if !almostEq(hp.ManualScore, 11) || !almostEq(hp.StrategicScore, 11) {
		t.Errorf("highest-priority boost: want 11, got manual=%g strategic=%g",
			hp.ManualScore, hp.StrategicScore)
	}
	plain := hybridFor(t, rows, "TY999R9918TLX9")
	if !almostEq(plain.ManualScore, 10) {
		t.Errorf("plain manual boost: want 10, got %g", plain.ManualScore)
	}

	// Every manual score exceeds every automated strategic score.
	for _, h := range rows {
		if h.Source != entities.SourceManual {
			continue
		}
		for _, other := range rows {
			if other.Source == entities.SourceAutomated && other.StrategicScore >= h.StrategicScore {
				t.Errorf("automated %s score %g reaches manual %s score %g",
					other.SKU, other.StrategicScore, h.SKU, h.StrategicScore)
			}
		}
	}
}

func TestOverrideService_ManualInheritsDeployment(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), config.Default())

	matched := hybridFor(t, rows, "TY215R6017TLB2")
	if matched.Source != entities.SourceManual {
		t.Fatalf("superseding row source: want Manual, got %s", matched.Source)
	}
	if !matched.HasDeployment {
		t.Error("manual row matching an automated SKU should carry deployment data")
	}
	if matched.MachineCount != 3 {
		t.Errorf("inherited machine count: want 3, got %d", matched.MachineCount)
	}
	if matched.AvgMouldHealth == nil || !almostEq(*matched.AvgMouldHealth, 0.7) {
		t.Errorf("inherited mould health: want 0.7, got %v", matched.AvgMouldHealth)
	}
	if !almostEq(matched.VectorRequirement, 35) {
		t.Errorf("preserved automated requirement: want 35, got %g", matched.VectorRequirement)
	}
	if !almostEq(matched.ManualQuantity, 40) || !almostEq(matched.Requirement, 40) {
		t.Errorf("manual quantity mirror: want 40/40, got %g/%g",
			matched.ManualQuantity, matched.Requirement)
	}

	unmatched := hybridFor(t, rows, "TY999R9918TLX9")
	if unmatched.HasDeployment {
		t.Error("manual row with no automated match should carry no deployment data")
	}
	if unmatched.MachineCount != 0 || unmatched.AvgMouldHealth != nil {
		t.Error("unmatched manual row machine fields should stay zero")
	}
}

func TestOverrideService_OverstockPenalty(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), config.Default())

	over := hybridFor(t, rows, "TY185R6515TLC3")
	if !over.Overstock {
		t.Error("penetration 150 automated row should be overstock")
	}
	if over.StrategicScore != 0 {
		t.Errorf("overstock score under zero penalty factor: want 0, got %g", over.StrategicScore)
	}

	// Penetration exactly 100 is not overstock.
	atHundred := []*entities.DeployedRecord{{
		ScoredRecord: entities.ScoredRecord{
			SKU: "TY175R7014TLE5", Market: entities.MarketOE,
			ConsolidatedScoreP: 1.0, Penetration: fp(100),
		},
	}}
	edge := NewOverrideService().Merge(ctx, atHundred, nil, config.Default())
	if edge[0].Overstock {
		t.Error("penetration exactly 100 should not be overstock")
	}
}

func TestOverrideService_ManualExemptFromOverstock(t *testing.T) {
	ctx := context.Background()

	deployed := []*entities.DeployedRecord{{
		ScoredRecord: entities.ScoredRecord{
			SKU: "TY185R6515TLC3", Market: entities.MarketRE,
			ConsolidatedScoreP: 1.5, Penetration: fp(150),
		},
	}}
	manual := []*entities.ManualEntry{
		{SKU: "TY185R6515TLC3", Market: entities.MarketRE, Quantity: 30},
	}

	rows := NewOverrideService().Merge(ctx, deployed, manual, config.Default())
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}
	h := rows[0]
	if h.Source != entities.SourceManual {
		t.Fatalf("source: want Manual, got %s", h.Source)
	}
	if h.Overstock {
		t.Error("manual rows are exempt from the overstock penalty")
	}
	if !almostEq(h.StrategicScore, 10) {
		t.Errorf("manual score: want 10, got %g", h.StrategicScore)
	}
}

func TestOverrideService_ManualRanks(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), config.Default())

	manualRank := 0
	for _, h := range rows {
		if h.Source == entities.SourceManual {
			manualRank++
			if h.ManualRank != manualRank {
				t.Errorf("%s: ManualRank %d, want %d", h.SKU, h.ManualRank, manualRank)
			}
		} else if h.ManualRank != 0 {
			t.Errorf("%s: automated row ManualRank %d, want 0", h.SKU, h.ManualRank)
		}
	}
	if manualRank != 2 {
		t.Errorf("manual rows seen: want 2, got %d", manualRank)
	}
}

func TestOverrideService_EqualScoreManualOrdersByQuantity(t *testing.T) {
	ctx := context.Background()
	manual := []*entities.ManualEntry{
		{SKU: "TY155R7013TLF6", Market: entities.MarketOE, Quantity: 40, HighestPriority: true},
		{SKU: "TY165R7013TLG7", Market: entities.MarketOE, Quantity: 70, HighestPriority: true},
	}

	rows := NewOverrideService().Merge(ctx, nil, manual, config.Default())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].SKU != "TY165R7013TLG7" {
		t.Errorf("equal-score manual rows: larger quantity first, got %s", rows[0].SKU)
	}
}

func TestOverrideService_NoManualEntries(t *testing.T) {
	ctx := context.Background()
	rows := NewOverrideService().Merge(ctx, overrideDeployed(), nil, config.Default())

	if len(rows) != 4 {
		t.Fatalf("expected 4 automated rows, got %d", len(rows))
	}
	for _, h := range rows {
		if h.Source != entities.SourceAutomated {
			t.Errorf("%s: source %s without manual input", h.SKU, h.Source)
		}
		if h.ManualRank != 0 {
			t.Errorf("%s: ManualRank %d without manual input", h.SKU, h.ManualRank)
		}
	}
	// Pass-through strategic score is the tier-2 score.
	a := hybridFor(t, rows, "TY195R5516TLA1")
	if !almostEq(a.StrategicScore, 1.2) {
		t.Errorf("automated strategic score: want 1.2, got %g", a.StrategicScore)
	}
}

func TestOverrideService_MergeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := config.Default()

	first := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), w)
	second := NewOverrideService().Merge(ctx, overrideDeployed(), overrideManual(), w)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SKU != second[i].SKU || first[i].FinalRank != second[i].FinalRank {
			t.Errorf("position %d: %s rank %d vs %s rank %d",
				i, first[i].SKU, first[i].FinalRank, second[i].SKU, second[i].FinalRank)
		}
	}
}
