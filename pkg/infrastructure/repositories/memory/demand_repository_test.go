package memory

import (
	"errors"
	"testing"
	"time"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

func TestDemandRepositoryByDate(t *testing.T) {
	repo := NewDemandRepository()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	other := date.AddDate(0, 0, 1)

	repo.LoadDemandRecords(date, []*entities.DemandRecord{
		{SKU: "TY195R5516TLA1", Market: entities.MarketRE},
	})
	repo.LoadDemandRecords(other, []*entities.DemandRecord{
		{SKU: "TY215R6017TLB2", Market: entities.MarketOE},
		{SKU: "TY185R6515TLC3", Market: entities.MarketST},
	})

	records, err := repo.DemandRecords(date)
	if err != nil {
		t.Fatalf("DemandRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].SKU != "TY195R5516TLA1" {
		t.Errorf("wrong records for date: %v", records)
	}

	records, err = repo.DemandRecords(other)
	if err != nil {
		t.Fatalf("DemandRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records for other date: want 2, got %d", len(records))
	}
}

func TestDemandRepositoryIgnoresTimeOfDay(t *testing.T) {
	repo := NewDemandRepository()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	repo.LoadDemandRecords(date, []*entities.DemandRecord{{SKU: "TY195R5516TLA1"}})

	records, err := repo.DemandRecords(date.Add(14 * time.Hour))
	if err != nil {
		t.Fatalf("lookup with a time of day failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("want 1 record, got %d", len(records))
	}
}

func TestDemandRepositoryUnknownDate(t *testing.T) {
	repo := NewDemandRepository()
	_, err := repo.DemandRecords(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("want ErrSourceUnavailable, got %v", err)
	}
}

func TestDemandRepositoryAppends(t *testing.T) {
	repo := NewDemandRepository()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	repo.LoadDemandRecords(date, []*entities.DemandRecord{{SKU: "TY195R5516TLA1"}})
	repo.LoadDemandRecords(date, []*entities.DemandRecord{{SKU: "TY215R6017TLB2"}})

	records, err := repo.DemandRecords(date)
	if err != nil {
		t.Fatalf("DemandRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("second load should append, got %d records", len(records))
	}
}
