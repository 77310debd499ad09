package services

import (
	"context"
	"sort"

	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
)

// OverrideService computes Stage 3 of the pipeline: it unions manual
// override entries with the automated deployed set, applies the
// super-boost and overstock policies, and assigns the final rank.
type OverrideService struct{}

// NewOverrideService creates a new override merge service
func NewOverrideService() *OverrideService {
	return &OverrideService{}
}

// Merge produces the fully ordered hybrid record set for one date.
// Manual rows supersede automated rows with the same SKU and inherit
// their deployment metrics; unmatched manual rows carry no deployment
// data; unmatched automated rows pass through unchanged.
func (s *OverrideService) Merge(
	ctx context.Context,
	deployed []*entities.DeployedRecord,
	manual []*entities.ManualEntry,
	w config.Weights,
) []*entities.HybridRecord {
	bySKU := make(map[entities.SKUCode]*entities.DeployedRecord, len(deployed))
	for _, d := range deployed {
		bySKU[d.SKU] = d
	}

	superseded := make(map[entities.SKUCode]bool, len(manual))
	rows := make([]*entities.HybridRecord, 0, len(deployed)+len(manual))

	for _, m := range manual {
		h := &entities.HybridRecord{
			Source:          entities.SourceManual,
			HighestPriority: m.HighestPriority,
			ManualQuantity:  m.Quantity,
		}
		h.SKU = m.SKU
		h.Description = m.Description
		h.Market = m.Market
		h.Size = m.SKU.RimSize()

		// Requirement mirrors the manual quantity so the shared
		// tie-break chain orders equal-score manual rows by quantity.
		h.Requirement = m.Quantity

		if d, ok := bySKU[m.SKU]; ok {
			superseded[m.SKU] = true
			h.MachineCount = d.MachineCount
			h.AvgMouldHealth = d.AvgMouldHealth
			h.ProxyPenetration = d.ProxyPenetration
			h.ProxyRank = d.ProxyRank
			h.CriticalGap = d.CriticalGap
			h.ExcessProduction = d.ExcessProduction
			h.MouldAlert = d.MouldAlert
			h.VectorRequirement = d.Requirement
			h.HasDeployment = true
		}

		h.ManualScore = w.BoostBase
		if m.HighestPriority {
			h.ManualScore += w.BoostMultiplier
		}
		h.StrategicScore = h.ManualScore

		rows = append(rows, h)
	}

	for _, d := range deployed {
		if superseded[d.SKU] {
			continue
		}
		rows = append(rows, &entities.HybridRecord{
			DeployedRecord:    *d,
			Source:            entities.SourceAutomated,
			VectorRequirement: d.Requirement,
			StrategicScore:    d.ConsolidatedScoreP,
			HasDeployment:     true,
		})
	}

	// Overstock: automated rows past 100% penetration collapse under the
	// penalty factor. Manual rows are categorically exempt regardless of
	// their own penetration.
	for _, h := range rows {
		if h.Source != entities.SourceManual && h.Penetration != nil && *h.Penetration > 100 {
			h.Overstock = true
			h.StrategicScore *= w.OverstockPenaltyFactor
		}
	}

	sort.Slice(rows, func(i, j int) bool { return lessHybrid(rows[i], rows[j]) })

	manualRank := 0
	for i, h := range rows {
		h.FinalRank = i + 1
		if h.Source == entities.SourceManual {
			manualRank++
			h.ManualRank = manualRank
		}
	}

	return rows
}

// lessHybrid implements the final ordering: the non-overstock partition
// first, in descending strategic score; then the overstock partition in
// ascending penetration, so penalized rows are ordered by proximity to
// being legitimate again rather than by score.
func lessHybrid(a, b *entities.HybridRecord) bool {
	if a.Overstock != b.Overstock {
		return !a.Overstock
	}
	if a.Overstock {
		ap, bp := a.PenetrationValue(), b.PenetrationValue()
		if ap != bp {
			return ap < bp
		}
		return a.SKU < b.SKU
	}
	return lessRanked(
		scoreKey(&a.ScoredRecord, a.StrategicScore),
		scoreKey(&b.ScoredRecord, b.StrategicScore),
	)
}
