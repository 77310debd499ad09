package output

import (
	"fmt"

	"vectorplan/pkg/application/dto"
	"vectorplan/pkg/domain/entities"
)

// topRowLimit caps the per-date preview table in text output.
const topRowLimit = 10

// generateTextOutput prints the executive summary planners read before
// opening the full workbook.
func generateTextOutput(result *dto.RangeResult, config Config) error {
	fmt.Printf("📊 Production Priority Summary\n")
	fmt.Printf("==============================\n\n")

	for _, dateResult := range result.Results {
		printDateSummary(dateResult)
	}

	if len(result.Skipped) > 0 {
		fmt.Printf("⚠️  Skipped dates:\n")
		for _, skipped := range result.Skipped {
			fmt.Printf("  • %s: %s\n", skipped.Date.Format("02-01-2006"), skipped.Reason)
		}
		fmt.Println()
	}
	return nil
}

func printDateSummary(result *dto.DateResult) {
	fmt.Printf("Date: %s (stage %d)\n", result.Date.Format("02-01-2006"), result.Stage)
	fmt.Printf("--------------------------\n")
	fmt.Printf("SKUs scored: %d\n", result.Summary.ScoredRecords)

	if result.Stage >= 2 {
		fmt.Printf("Machines active: %d\n", result.Summary.MachinesActive)
		fmt.Printf("Ghost SKUs (running, no demand): %d\n", result.Summary.GhostSKUs)
	}
	if result.Stage >= 3 {
		fmt.Printf("\nManual Override:\n")
		fmt.Printf("  • Manual entries injected : %d\n", result.Summary.ManualRows)
		fmt.Printf("  • Flagged highest priority: %d\n", result.Summary.HighestManual)
		fmt.Printf("  • Final sequence rows     : %d\n", result.Summary.HybridRows)
	}
	if result.Stage >= 2 {
		fmt.Printf("\nAction Required:\n")
		fmt.Printf("  • 🔴 Critical gaps (high priority, not running)      : %d\n", result.Summary.CriticalGaps)
		fmt.Printf("  • ⚠️  Excess production (low priority, many machines) : %d\n", result.Summary.ExcessRunning)
		fmt.Printf("  • 🔧 Mould alerts (nearing end of life)              : %d\n", result.Summary.MouldAlerts)
		if result.Stage >= 3 {
			fmt.Printf("  • 📦 Overstock rows (sent to end of sequence)        : %d\n", result.Summary.OverstockRows)
		}
	}
	for _, degraded := range result.Summary.Degraded {
		fmt.Printf("⚠️  Degraded: %s\n", degraded)
	}
	fmt.Println()

	switch result.Stage {
	case 1:
		printTopScored(result.Scored)
	case 2:
		printTopDeployed(result.Deployed)
	default:
		printTopHybrid(result.Hybrid)
	}
	fmt.Println()
}

func printTopScored(records []*entities.ScoredRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("📋 Top priorities:\n")
	fmt.Printf("%-6s %-18s %-8s %-12s %-12s\n", "Rank", "SKU", "Market", "Tier1 Score", "Tier2 Score")
	fmt.Printf("%-6s %-18s %-8s %-12s %-12s\n", "------", "------------------", "--------", "------------", "------------")
	for i, r := range records {
		if i >= topRowLimit {
			break
		}
		fmt.Printf("%-6d %-18s %-8s %-12.4f %-12.4f\n",
			r.RankConsolidated, r.SKU, r.Market, r.ConsolidatedScore, r.ConsolidatedScoreP)
	}
}

func printTopDeployed(records []*entities.DeployedRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("📋 Top deployment priorities:\n")
	fmt.Printf("%-6s %-18s %-10s %-18s %-8s\n", "Rank", "SKU", "Machines", "Proxy Penetration", "Ghost")
	fmt.Printf("%-6s %-18s %-10s %-18s %-8s\n", "------", "------------------", "----------", "------------------", "--------")
	for i, d := range records {
		if i >= topRowLimit {
			break
		}
		fmt.Printf("%-6d %-18s %-10d %-18.4f %-8t\n",
			d.ProxyRank, d.SKU, d.MachineCount, d.ProxyPenetration, d.IsGhostSKU)
	}
}

func printTopHybrid(records []*entities.HybridRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf("📋 Final production sequence:\n")
	fmt.Printf("%-6s %-18s %-10s %-16s %-8s\n", "Rank", "SKU", "Source", "Strategic Score", "Market")
	fmt.Printf("%-6s %-18s %-10s %-16s %-8s\n", "------", "------------------", "----------", "----------------", "--------")
	for i, h := range records {
		if i >= topRowLimit {
			break
		}
		fmt.Printf("%-6d %-18s %-10s %-16.4f %-8s\n",
			h.FinalRank, h.SKU, h.Source, h.StrategicScore, h.Market)
	}
}
