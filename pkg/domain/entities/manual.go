package entities

// ManualEntry is one row from the manual frontend demand workbook.
// Manual entries are injected above every automated row during the
// override merge.
type ManualEntry struct {
	SKU             SKUCode
	Description     string
	Market          Market
	Quantity        float64
	HighestPriority bool
}
