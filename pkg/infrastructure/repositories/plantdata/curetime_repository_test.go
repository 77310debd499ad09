package plantdata

import (
	"errors"
	"path/filepath"
	"testing"

	"vectorplan/pkg/domain/repositories"
)

func TestCureTimesKeepLongest(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "curing_cycletime.csv"), []byte(
		`SKUCode,Cure Time
TY195R5516TLA1,12.5
TY215R6017TLB2,14
TY195R5516TLA1,11
TY195R5516TLA1,15.5
TY185R6515TLC3,-
,9
`))

	records, err := NewCureTimeRepository(dir).CureTimes()
	if err != nil {
		t.Fatalf("CureTimes failed: %v", err)
	}

	// The unparseable and blank-SKU rows contribute nothing, so two SKUs
	// remain in first-seen order.
	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if records[0].SKU != "TY195R5516TLA1" || records[0].CureMinutes != 15.5 {
		t.Errorf("duplicate SKU should keep its longest cure: %+v", records[0])
	}
	if records[1].SKU != "TY215R6017TLB2" || records[1].CureMinutes != 14 {
		t.Errorf("second record: %+v", records[1])
	}
}

func TestCureTimesMissingFile(t *testing.T) {
	_, err := NewCureTimeRepository(t.TempDir()).CureTimes()
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("want ErrSourceUnavailable, got %v", err)
	}
}

func TestCureTimesMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "curing_cycletime.csv"), []byte(
		"SKUCode,Minutes\nTY195R5516TLA1,12.5\n"))

	_, err := NewCureTimeRepository(dir).CureTimes()
	if err == nil {
		t.Fatal("expected error for a file without the cure time column")
	}
}
