package services

import (
	"context"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
)

// cureOverheadMinutes is added to every curing cycle for mould open,
// close and tyre handling time.
const cureOverheadMinutes = 2.5

const minutesPerDay = 1440.0

// DemandService computes Stage 1 of the pipeline: multi-factor demand,
// inventory and price scoring with batch-relative normalization for one
// analysis date.
type DemandService struct{}

// NewDemandService creates a new demand scoring service
func NewDemandService() *DemandService {
	return &DemandService{}
}

// DemandInputs carries the per-date source record sets Stage 1 consumes.
// The optional inputs (stockouts, dispatch history, cure times) may be
// empty; affected records resolve to documented fallbacks, never batch
// failures.
type DemandInputs struct {
	Demand    []*entities.DemandRecord
	Stockouts []*entities.StockoutCount
	Dispatch  []*entities.DispatchRecord
	CureTimes []*entities.CureTimeRecord
}

// Score produces the scored record set for one date, ordered by the
// Tier-1 rank. The input records are not mutated.
func (s *DemandService) Score(
	ctx context.Context,
	in DemandInputs,
	w config.Weights,
) []*entities.ScoredRecord {
	inventory := inventoryScores(in.Stockouts, w)
	prices := meanUnitPrices(in.Dispatch)
	cures := cureTimesBySKU(in.CureTimes)

	out := make([]*entities.ScoredRecord, 0, len(in.Demand))
	for _, d := range in.Demand {
		out = append(out, scoreRecord(d, inventory, prices, cures, w))
	}

	// Batch-relative normalization is an explicit two-pass computation:
	// collect each column, divide by its per-date maximum, write back.
	pens := make([]float64, len(out))
	reqs := make([]float64, len(out))
	invs := make([]float64, len(out))
	revs := make([]float64, len(out))
	for i, r := range out {
		pens[i] = r.PenetrationValue()
		reqs[i] = r.Requirement
		invs[i] = r.InventoryScore
		revs[i] = r.RevenuePotential
	}
	normPens := normalizeBatch(pens)
	normReqs := normalizeBatch(reqs)
	normInvs := normalizeBatch(invs)
	normRevs := normalizeBatch(revs)

	for i, r := range out {
		r.NormPenetration = normPens[i]
		r.NormRequirement = normReqs[i]
		r.NormInventoryScore = normInvs[i]
		r.PricePriority = normRevs[i]

		r.PriorityScore = r.MarketWeight*w.MarketWeightage +
			r.NormPenetration*w.PenetrationWeightage +
			r.NormRequirement*w.RequirementWeightage +
			topSKUValue(r.TopSKU)*w.TopSKUWeightage

		r.ConsolidatedScore = r.PriorityScore*w.Tier1Demand +
			r.NormInventoryScore*w.Tier1Inventory

		r.ConsolidatedScoreP = r.PriorityScore*w.Tier2Demand +
			r.NormInventoryScore*w.Tier2Inventory +
			r.PricePriority*w.Tier2Price
	}

	sort.Slice(out, func(i, j int) bool {
		return lessRanked(
			scoreKey(out[i], out[i].ConsolidatedScoreP),
			scoreKey(out[j], out[j].ConsolidatedScoreP),
		)
	})
	for i, r := range out {
		r.RankConsolidatedP = i + 1
	}

	sort.Slice(out, func(i, j int) bool {
		return lessRanked(
			scoreKey(out[i], out[i].ConsolidatedScore),
			scoreKey(out[j], out[j].ConsolidatedScore),
		)
	})
	for i, r := range out {
		r.RankConsolidated = i + 1
	}

	return out
}

// scoreRecord computes the per-record columns that do not depend on the
// rest of the batch.
func scoreRecord(
	d *entities.DemandRecord,
	inventory map[entities.SKUCode]float64,
	prices map[entities.SKUCode]float64,
	cures map[entities.SKUCode]float64,
	w config.Weights,
) *entities.ScoredRecord {
	r := &entities.ScoredRecord{
		SKU:            d.SKU,
		Description:    d.Description,
		Size:           d.SKU.RimSize(),
		Market:         d.Market,
		Norm:           d.Norm,
		VirtualNorm:    d.VirtualNorm,
		Stock:          d.Stock,
		TopSKU:         d.TopSKU,
		MarketWeight:   w.MarketWeights[d.Market],
		InventoryScore: inventory[d.SKU],
	}

	// RE targets half the virtual norm (conservative replacement
	// target); the other banded markets target the full norm. Export
	// rows carry no virtual norm, so the target stays unset and the
	// requirement stays 0.
	if d.Market != entities.MarketEXP && d.VirtualNorm != nil {
		target := *d.VirtualNorm
		if d.Market == entities.MarketRE {
			target *= 0.5
		}
		r.AdjustedTarget = &target

		if gap := target - d.Stock; gap > 0 {
			r.Requirement = gap
		}

		// Penetration is exactly 0 for a zero target, not a division
		// fault.
		pen := 0.0
		if target != 0 {
			pen = (target - d.Stock) / target * 100
		}
		r.Penetration = &pen
	}

	asp, ok := prices[d.SKU]
	if !ok {
		asp = w.DefaultASP
	}
	r.ASP = asp

	cure, ok := cures[d.SKU]
	if !ok || cure <= 0 {
		cure = w.DefaultCureTime
	}
	r.CureTime = cure
	r.DailyCure = int(math.Ceil(minutesPerDay / (cure + cureOverheadMinutes) * w.EfficiencyFactor))
	r.RevenuePotential = r.ASP * float64(r.DailyCure)

	return r
}

// inventoryScores aggregates weighted stockout counts per SKU across
// location types. Black stockouts outweigh Red at the same location
// under the default factors.
func inventoryScores(
	counts []*entities.StockoutCount,
	w config.Weights,
) map[entities.SKUCode]float64 {
	scores := make(map[entities.SKUCode]float64, len(counts))
	for _, c := range counts {
		weight := w.LocationWeights[c.LocationType]
		scores[c.SKU] += float64(c.BlackCount)*weight*w.InventoryBlackFactor +
			float64(c.RedCount)*weight*w.InventoryRedFactor
	}
	return scores
}

// meanUnitPrices averages the unit price per SKU over its dispatch
// history using decimal arithmetic. Rows with non-positive quantities
// are skipped.
func meanUnitPrices(records []*entities.DispatchRecord) map[entities.SKUCode]float64 {
	sums := make(map[entities.SKUCode]decimal.Decimal)
	counts := make(map[entities.SKUCode]int64)
	for _, rec := range records {
		if rec.Quantity.Sign() <= 0 {
			continue
		}
		sums[rec.SKU] = sums[rec.SKU].Add(rec.UnitPrice())
		counts[rec.SKU]++
	}

	prices := make(map[entities.SKUCode]float64, len(sums))
	for sku, sum := range sums {
		prices[sku] = sum.Div(decimal.NewFromInt(counts[sku])).InexactFloat64()
	}
	return prices
}

// cureTimesBySKU keeps the longest reported cure time per SKU.
func cureTimesBySKU(records []*entities.CureTimeRecord) map[entities.SKUCode]float64 {
	cures := make(map[entities.SKUCode]float64, len(records))
	for _, rec := range records {
		if existing, ok := cures[rec.SKU]; !ok || rec.CureMinutes > existing {
			cures[rec.SKU] = rec.CureMinutes
		}
	}
	return cures
}

func topSKUValue(top bool) float64 {
	if top {
		return 1
	}
	return 0
}
