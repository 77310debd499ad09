package services

import (
	"context"
	"math"
	"sort"

	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
)

// DeploymentService computes Stage 2 of the pipeline: it joins the scored
// demand set with the day's machine assignments and discounts priorities
// for SKUs already in production.
type DeploymentService struct{}

// NewDeploymentService creates a new deployment adjustment service
func NewDeploymentService() *DeploymentService {
	return &DeploymentService{}
}

// mouldGroup accumulates per-SKU machine data. Distinct machine names
// are counted because RH/LH press sides report under one name.
type mouldGroup struct {
	machines  map[string]struct{}
	healthSum float64
	healthN   int
}

// Adjust produces the deployed record set for one date, ordered by
// ProxyRank. An empty machine set degrades gracefully: every SKU gets
// MachineCount 0, mould health stays unset, and no ghost rows appear.
func (s *DeploymentService) Adjust(
	ctx context.Context,
	scored []*entities.ScoredRecord,
	machines []*entities.MachineAssignment,
	w config.Weights,
) []*entities.DeployedRecord {
	groups := groupMachinesBySKU(machines)

	out := make([]*entities.DeployedRecord, 0, len(scored)+len(groups))
	seen := make(map[entities.SKUCode]bool, len(scored))

	for _, r := range scored {
		seen[r.SKU] = true

		d := &entities.DeployedRecord{ScoredRecord: *r}
		if g, ok := groups[r.SKU]; ok {
			d.MachineCount = len(g.machines)
			d.AvgMouldHealth = g.averageHealth()
		}

		d.ProxyPenetration = r.ConsolidatedScore * penaltyFactor(d.MachineCount, w)
		d.CriticalGap = r.RankConsolidated <= w.CriticalGapRank && d.MachineCount == 0
		d.ExcessProduction = r.RankConsolidated > w.ExcessProductionRank &&
			d.MachineCount > w.ExcessMachineCount
		d.MouldAlert = d.AvgMouldHealth != nil && *d.AvgMouldHealth > w.MouldLifeThreshold

		out = append(out, d)
	}

	// Ghost rows: running on a press without any demand record. Demand
	// fields stay null and scores stay 0, so they order behind every
	// scored SKU with positive priority.
	for _, sku := range sortedGhostSKUs(groups, seen) {
		g := groups[sku]
		d := &entities.DeployedRecord{
			ScoredRecord: entities.ScoredRecord{
				SKU:  sku,
				Size: sku.RimSize(),
			},
			IsGhostSKU:     true,
			MachineCount:   len(g.machines),
			AvgMouldHealth: g.averageHealth(),
		}
		d.MouldAlert = d.AvgMouldHealth != nil && *d.AvgMouldHealth > w.MouldLifeThreshold
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return lessRanked(
			scoreKey(&out[i].ScoredRecord, out[i].ProxyPenetration),
			scoreKey(&out[j].ScoredRecord, out[j].ProxyPenetration),
		)
	})
	for i, d := range out {
		d.ProxyRank = i + 1
	}

	return out
}

func groupMachinesBySKU(machines []*entities.MachineAssignment) map[entities.SKUCode]*mouldGroup {
	groups := make(map[entities.SKUCode]*mouldGroup)
	for _, m := range machines {
		g, ok := groups[m.SKU]
		if !ok {
			g = &mouldGroup{machines: make(map[string]struct{})}
			groups[m.SKU] = g
		}
		g.machines[m.Machine] = struct{}{}
		if health, ok := m.MouldHealth(); ok {
			g.healthSum += health
			g.healthN++
		}
	}
	return groups
}

// averageHealth returns the mean mould health across the group's
// machines, or nil when no machine reported a usable target life.
func (g *mouldGroup) averageHealth() *float64 {
	if g.healthN == 0 {
		return nil
	}
	avg := g.healthSum / float64(g.healthN)
	return &avg
}

// penaltyFactor discounts priority per running machine; it floors at 0
// once enough machines run the SKU.
func penaltyFactor(machineCount int, w config.Weights) float64 {
	return math.Max(0, 1-float64(machineCount)*w.MachineCountPenalty)
}

// sortedGhostSKUs returns the machine-only SKUs in ascending code order
// so ghost synthesis is deterministic.
func sortedGhostSKUs(
	groups map[entities.SKUCode]*mouldGroup,
	seen map[entities.SKUCode]bool,
) []entities.SKUCode {
	ghosts := make([]entities.SKUCode, 0)
	for sku := range groups {
		if !seen[sku] {
			ghosts = append(ghosts, sku)
		}
	}
	sort.Slice(ghosts, func(i, j int) bool { return ghosts[i] < ghosts[j] })
	return ghosts
}
