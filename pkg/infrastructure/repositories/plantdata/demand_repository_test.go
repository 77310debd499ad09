package plantdata

import (
	"errors"
	"path/filepath"
	"testing"

	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
)

func TestDemandRepositoryCombinesSources(t *testing.T) {
	dir := t.TempDir()
	writeBufferReport(t, dir)
	writeBandwiseReport(t, dir)
	writeExportReport(t, dir)

	records, err := NewDemandRepository(dir).DemandRecords(fixtureDate)
	if err != nil {
		t.Fatalf("DemandRecords failed: %v", err)
	}
	if len(records) != 4 {
		for _, r := range records {
			t.Logf("  %s %s %s", r.SKU, r.Market, r.LocationCode)
		}
		t.Fatalf("want 4 records, got %d", len(records))
	}

	// Export rows lead, in report order.
	exp := records[0]
	if exp.SKU != "TY235R4518TLD4" || exp.Market != entities.MarketEXP {
		t.Errorf("first record should be the export row, got %s %s", exp.SKU, exp.Market)
	}
	if !exp.TopSKU || exp.VirtualNorm != nil || exp.Description != "235/45 R18 Export" {
		t.Errorf("export row fields: top=%v vn=%v desc=%q",
			exp.TopSKU, exp.VirtualNorm, exp.Description)
	}

	by := make(map[entities.SKUCode]*entities.DemandRecord)
	for _, r := range records {
		by[r.SKU] = r
	}

	re := by["TY195R5516TLA1"]
	if re == nil {
		t.Fatal("replacement row missing")
	}
	if re.Market != entities.MarketRE || re.LocationCode != "1300_FG10" {
		t.Errorf("replacement row market/location: %s %s", re.Market, re.LocationCode)
	}
	if re.Norm != 120 || re.VirtualNorm == nil || *re.VirtualNorm != 100 || re.Stock != 80 {
		t.Errorf("replacement row values: norm=%g vn=%v stock=%g", re.Norm, re.VirtualNorm, re.Stock)
	}
	if !re.TopSKU {
		t.Error("replacement row should carry the buffer report's top-SKU flag")
	}
	if re.Description != "195/55 R16 Touring" {
		t.Errorf("replacement row description: %q", re.Description)
	}

	if oe := by["TY215R6017TLB2"]; oe == nil || oe.Market != entities.MarketOE || oe.TopSKU {
		t.Errorf("OE row: %+v", oe)
	}

	// A blank Virtual Norm cell must stay unset, not become zero.
	st := by["TY185R6515TLC3"]
	if st == nil || st.Market != entities.MarketST {
		t.Fatalf("ST row: %+v", st)
	}
	if st.VirtualNorm != nil {
		t.Errorf("blank virtual norm should be nil, got %g", *st.VirtualNorm)
	}

	for _, sku := range []entities.SKUCode{"TY999R9916TLZZ", "TY888R8816TLYY", "TY777R7716TLXX"} {
		if by[sku] != nil {
			t.Errorf("row %s should have been skipped", sku)
		}
	}
}

func TestDemandRepositoryMissingFiles(t *testing.T) {
	// Empty directory: the buffer report is the first read to fail.
	_, err := NewDemandRepository(t.TempDir()).DemandRecords(fixtureDate)
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("empty dir: want ErrSourceUnavailable, got %v", err)
	}

	// Buffer report present, export workbook missing.
	dir := t.TempDir()
	writeBufferReport(t, dir)
	_, err = NewDemandRepository(dir).DemandRecords(fixtureDate)
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("missing workbook: want ErrSourceUnavailable, got %v", err)
	}

	// Bandwise report missing as the last of the three.
	writeExportReport(t, dir)
	_, err = NewDemandRepository(dir).DemandRecords(fixtureDate)
	if !errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("missing bandwise report: want ErrSourceUnavailable, got %v", err)
	}
}

func TestDemandRepositoryMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeBufferReport(t, dir)
	writeExportReport(t, dir)
	writeFixture(t, filepath.Join(dir, "Vectordata", "BOR",
		"BORColorBandwiseReport__15-03-2025.csv"), []byte(
		`SKUCode,Location Code,Norm,Stock
TY195R5516TLA1,1300_FG10,120,80
`))

	_, err := NewDemandRepository(dir).DemandRecords(fixtureDate)
	if err == nil {
		t.Fatal("expected error for a report without the virtual norm column")
	}
	if errors.Is(err, repositories.ErrSourceUnavailable) {
		t.Errorf("malformed file is not a missing source: %v", err)
	}
}
