package plantdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

var fixtureDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

// writeFixture writes one plant export file, creating directories as
// needed.
func writeFixture(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeWorkbook writes an xlsx fixture with the given rows on the
// default sheet. Nil cells stay empty.
func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				t.Fatalf("set cell %s: %v", cellName, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

// writeBufferReport writes the buffer penetration report the demand and
// stockout repositories share: top-SKU flags plus stockout colours.
func writeBufferReport(t *testing.T, dir string) {
	t.Helper()
	writeFixture(t, bufferReportPath(dir, fixtureDate), []byte(
		`SKUCode,Location Code,Location Type,Top SKU,On Hand Inv. Color
TY195R5516TLA1,1300_FG10,JIT,T,Black
TY195R5516TLA1,1300_FG10,JIT,T,Red
TY215R6017TLB2,1300_OE10,depot,F,Black
TY215R6017TLB2,1300_OE10,depot,F,Red
TY215R6017TLB2,1300_OE10,depot,F,Red
TY185R6515TLC3,1300_ST10,PWH,F,Green
`))
}

// writeBandwiseReport writes the OE/ST/RE demand export, including rows
// the loader must skip: a foreign plant, an unmapped location suffix, a
// code without a suffix and a blank SKU.
func writeBandwiseReport(t *testing.T, dir string) {
	t.Helper()
	writeFixture(t, filepath.Join(dir, "Vectordata", "BOR",
		"BORColorBandwiseReport__15-03-2025.csv"), []byte(
		`SKUCode,SKU Description,Location Code,Norm,Virtual Norm,Stock
TY195R5516TLA1,195/55 R16 Touring,1300_FG10,120,100,80
TY215R6017TLB2,215/60 R17 Highway,1300_OE10,90,90,30
TY185R6515TLC3,185/65 R15 City,1300_ST10,60,,70
TY999R9916TLZZ,Foreign plant,1400_FG10,50,40,10
TY888R8816TLYY,Unknown suffix,1300_XX10,50,40,10
TY777R7716TLXX,No suffix,1300,50,40,10
,Blank code,1300_FG10,50,40,10
`))
}

// writeExportReport writes the export balance workbook: a title row, the
// real header on the second row, then data.
func writeExportReport(t *testing.T, dir string) {
	t.Helper()
	writeWorkbook(t, filepath.Join(dir, "Vectordata", "BMR",
		"Prod_OverAll_BMReport__15_03_2025.xlsx"), [][]any{
		{"Production Overall Balance Report"},
		{"Item Code", "Item Description", "Plant Code"},
		{"TY235R4518TLD4", "235/45 R18 Export", "1300"},
		{"TY234R4018TLE5", "Foreign export", "1500"},
		{nil, "Blank code", "1300"},
	})
}
