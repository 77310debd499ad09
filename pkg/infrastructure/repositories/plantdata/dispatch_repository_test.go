package plantdata

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"vectorplan/pkg/domain/repositories"
)

// writeDispatchExport writes the SAP dispatch export as raw ISO-8859-1
// bytes: \xfc is a Latin-1 u-umlaut, and amounts carry thousands
// separators inside quoted fields.
func writeDispatchExport(t *testing.T, dir string) {
	t.Helper()
	writeFixture(t, filepath.Join(dir, "DISPATCH1.csv"), []byte(
		"Material,Plant,Name,Quantity,Amt.in loc.cur.\n"+
			"TY195R5516TLA1,1300,M\xfcller Transport,10,\"35,000.00\"\n"+
			"TY215R6017TLB2,1300,Plainline,2,1200.50\n"+
			"TY185R6515TLC3,1300,Zero quantity,0,500.00\n"+
			"TY185R6515TLC3,1300,Negative quantity,-5,500.00\n"+
			"TY185R6515TLC3,1300,Bad amount,3,N/A\n"+
			"TY999R9916TLZZ,1400,Foreign plant,4,100.00\n"+
			",1300,Blank material,4,100.00\n"))
}

func TestDispatchRecordsParsing(t *testing.T) {
	dir := t.TempDir()
	writeDispatchExport(t, dir)

	records, err := NewDispatchRepository(dir).DispatchRecords()
	if err != nil {
		t.Fatalf("DispatchRecords failed: %v", err)
	}
	if len(records) != 2 {
		for _, r := range records {
			t.Logf("  %s qty=%s amount=%s", r.SKU, r.Quantity, r.Amount)
		}
		t.Fatalf("want 2 records, got %d", len(records))
	}

	first := records[0]
	if first.SKU != "TY195R5516TLA1" {
		t.Errorf("first SKU: %s", first.SKU)
	}
	if !first.Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("first quantity: %s", first.Quantity)
	}
	if !first.Amount.Equal(decimal.NewFromInt(35000)) {
		t.Errorf("separator-laden amount: %s, want 35000", first.Amount)
	}
	if !first.UnitPrice().Equal(decimal.NewFromInt(3500)) {
		t.Errorf("unit price: %s, want 3500", first.UnitPrice())
	}

	second := records[1]
	if second.SKU != "TY215R6017TLB2" || !second.Amount.Equal(decimal.NewFromFloat(1200.50)) {
		t.Errorf("second record: %s %s", second.SKU, second.Amount)
	}
}

func TestDispatchRecordsMissingFile(t *testing.T) {
	_, err := NewDispatchRepository(t.TempDir()).DispatchRecords()
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("want ErrSourceUnavailable, got %v", err)
	}
}

func TestDispatchRecordsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "DISPATCH1.csv"), []byte(
		"Material,Plant,Quantity\nTY195R5516TLA1,1300,10\n"))

	_, err := NewDispatchRepository(dir).DispatchRecords()
	if err == nil {
		t.Fatal("expected error for an export without the amount column")
	}
	if errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("malformed file is not a missing source: %v", err)
	}
}
