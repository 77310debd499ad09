package output

import (
	"vectorplan/pkg/application/dto"
	"vectorplan/pkg/domain/entities"
)

// table is one rendered report sheet: headers plus rows of cells.
// A nil cell renders blank in every format.
type table struct {
	Headers []string
	Rows    [][]any
}

// resultTable renders the stage that a date result ran to.
func resultTable(result *dto.DateResult) table {
	switch result.Stage {
	case 1:
		return scoredTable(result.Scored)
	case 2:
		return deployedTable(result.Deployed)
	default:
		return hybridTable(result.Hybrid)
	}
}

// optionalFloat renders an absent numeric as a blank cell.
func optionalFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Column group segments shared across the three stage layouts. The
// order tells the report's left-to-right story: who, targets, demand
// signals, attributes, inventory, deployment, revenue, scoring.

var identityHeaders = []string{"SKUCode", "SKU Description", "Size"}

var demandHeaders = []string{
	"Market", "Norm", "Virtual Norm", "Adjusted Target",
	"Stock", "Requirement", "Penetration", "NormPenetration", "NormRequirement",
	"Top SKU", "MarketWeight",
	"InventoryScore", "NormInventoryScore",
}

var deploymentHeaders = []string{
	"Machine Count", "Avg Mould Health", "Proxy Penetration", "Proxy Rank",
	"Critical Gap", "Excess Production", "Mould Alert", "Ghost SKU",
}

var revenueHeaders = []string{
	"ASP", "Cure Time", "Daily Cure", "Revenue Potential", "Price Priority",
}

var scoringHeaders = []string{
	"PriorityScore", "Tier1 Score", "Tier1 Rank", "Tier2 Score", "Tier2 Rank",
}

func identityCells(r *entities.ScoredRecord) []any {
	return []any{r.SKU.String(), r.Description, r.Size}
}

// demandCells renders the demand-derived columns. Ghost rows carry no
// demand, so every cell goes blank.
func demandCells(r *entities.ScoredRecord, ghost bool) []any {
	if ghost {
		return make([]any, len(demandHeaders))
	}
	return []any{
		string(r.Market), r.Norm, optionalFloat(r.VirtualNorm), optionalFloat(r.AdjustedTarget),
		r.Stock, r.Requirement, optionalFloat(r.Penetration), r.NormPenetration, r.NormRequirement,
		r.TopSKU, r.MarketWeight,
		r.InventoryScore, r.NormInventoryScore,
	}
}

// deploymentCells renders the machine columns. Rows that never passed
// through deployment (unmatched manual overrides) go blank.
func deploymentCells(d *entities.DeployedRecord, deployed bool) []any {
	if !deployed {
		return make([]any, len(deploymentHeaders))
	}
	return []any{
		d.MachineCount, optionalFloat(d.AvgMouldHealth), d.ProxyPenetration, d.ProxyRank,
		d.CriticalGap, d.ExcessProduction, d.MouldAlert, d.IsGhostSKU,
	}
}

func revenueCells(r *entities.ScoredRecord, ghost bool) []any {
	if ghost {
		return make([]any, len(revenueHeaders))
	}
	return []any{r.ASP, r.CureTime, r.DailyCure, r.RevenuePotential, r.PricePriority}
}

func scoringCells(r *entities.ScoredRecord, ghost bool) []any {
	if ghost {
		return make([]any, len(scoringHeaders))
	}
	return []any{
		r.PriorityScore,
		r.ConsolidatedScore, r.RankConsolidated,
		r.ConsolidatedScoreP, r.RankConsolidatedP,
	}
}

func appendCells(segments ...[]any) []any {
	var row []any
	for _, segment := range segments {
		row = append(row, segment...)
	}
	return row
}

func appendHeaders(segments ...[]string) []string {
	var headers []string
	for _, segment := range segments {
		headers = append(headers, segment...)
	}
	return headers
}

// scoredTable renders Stage 1 rows in consolidated rank order.
func scoredTable(records []*entities.ScoredRecord) table {
	t := table{Headers: appendHeaders(identityHeaders, demandHeaders, revenueHeaders, scoringHeaders)}
	for _, r := range records {
		t.Rows = append(t.Rows, appendCells(
			identityCells(r), demandCells(r, false), revenueCells(r, false), scoringCells(r, false)))
	}
	return t
}

// deployedTable renders Stage 2 rows in proxy rank order.
func deployedTable(records []*entities.DeployedRecord) table {
	t := table{Headers: appendHeaders(
		identityHeaders, demandHeaders, deploymentHeaders, revenueHeaders, scoringHeaders)}
	for _, d := range records {
		t.Rows = append(t.Rows, appendCells(
			identityCells(&d.ScoredRecord),
			demandCells(&d.ScoredRecord, d.IsGhostSKU),
			deploymentCells(d, true),
			revenueCells(&d.ScoredRecord, d.IsGhostSKU),
			scoringCells(&d.ScoredRecord, d.IsGhostSKU)))
	}
	return t
}

var overrideHeaders = []string{
	"Source", "Highest Priority", "Manual Score", "Manual Rank",
	"Strategic Score", "Overstock",
	"Vector Requirement", "Manual Quantity",
}

// manualOnly blanks manual-override columns on automated rows.
func manualOnly(manual bool, v any) any {
	if !manual {
		return nil
	}
	return v
}

// hybridTable renders Stage 3 rows in final production sequence.
func hybridTable(records []*entities.HybridRecord) table {
	t := table{Headers: appendHeaders(
		[]string{"Final Rank"}, identityHeaders, overrideHeaders,
		demandHeaders, deploymentHeaders, revenueHeaders, scoringHeaders)}
	for _, h := range records {
		manual := h.Source == entities.SourceManual
		t.Rows = append(t.Rows, appendCells(
			[]any{h.FinalRank},
			identityCells(&h.ScoredRecord),
			[]any{
				string(h.Source),
				manualOnly(manual, h.HighestPriority),
				manualOnly(manual, h.ManualScore),
				manualOnly(manual, h.ManualRank),
				h.StrategicScore, h.Overstock,
				h.VectorRequirement,
				manualOnly(manual, h.ManualQuantity),
			},
			demandCells(&h.ScoredRecord, h.IsGhostSKU),
			deploymentCells(&h.DeployedRecord, h.HasDeployment),
			revenueCells(&h.ScoredRecord, h.IsGhostSKU),
			scoringCells(&h.ScoredRecord, h.IsGhostSKU)))
	}
	return t
}
