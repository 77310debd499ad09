// Command example runs the full prioritization pipeline against a small
// in-memory plant dataset and prints the resulting production sequence.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"vectorplan/pkg/application/services"
	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
	testhelpers "vectorplan/pkg/infrastructure/testing"
)

func main() {
	fmt.Println("🚀 Tyre Plant Production Prioritization Example")
	fmt.Println("===============================================")

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	fmt.Printf("\nAnalysis date: %s\n", date.Format(services.DateFormat))

	repos := testhelpers.BuildPlantTestData(date)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)

	orchestrator := services.NewPipelineOrchestrator(logger, services.Sources{
		Demand:    repos.Demand,
		Stockouts: repos.Stockout,
		Dispatch:  repos.Dispatch,
		CureTimes: repos.CureTime,
		Mould:     repos.Mould,
		Manual:    repos.Manual,
	}, config.Default())

	fmt.Println("\n🔄 Running all three stages...")
	result, err := orchestrator.RunDate(context.Background(), date, 3)
	if err != nil {
		fmt.Printf("❌ Pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n📊 Summary:")
	fmt.Printf("   SKUs scored:      %d\n", result.Summary.ScoredRecords)
	fmt.Printf("   Machines active:  %d\n", result.Summary.MachinesActive)
	fmt.Printf("   Ghost SKUs:       %d\n", result.Summary.GhostSKUs)
	fmt.Printf("   Critical gaps:    %d\n", result.Summary.CriticalGaps)
	fmt.Printf("   Manual overrides: %d\n", result.Summary.ManualRows)

	fmt.Println("\n📝 Final production sequence:")
	fmt.Printf("   %-5s %-16s %-8s %-10s %-9s %s\n",
		"Rank", "SKU", "Market", "Source", "Machines", "Strategic Score")
	for _, record := range result.Hybrid {
		marker := "   "
		if record.Source == entities.SourceManual {
			marker = "⭐ "
		}
		fmt.Printf("%s%-5d %-16s %-8s %-10s %-9d %.4f\n",
			marker, record.FinalRank, record.SKU, record.Market,
			record.Source, record.MachineCount, record.StrategicScore)
	}

	if len(result.Summary.Degraded) > 0 {
		fmt.Printf("\n⚠️  Degraded sources: %v\n", result.Summary.Degraded)
	}

	fmt.Println("\n✅ Prioritization complete!")
}
