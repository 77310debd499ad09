package entities

import "github.com/shopspring/decimal"

// DemandRecord is one SKU-market demand row for an analysis date.
// Exactly one record exists per (SKU, Market) per date per source.
type DemandRecord struct {
	SKU          SKUCode
	Description  string
	Market       Market
	LocationCode string
	Norm         float64
	VirtualNorm  *float64 // export rows never carry one
	Stock        float64
	TopSKU       bool
}

// StockoutCount aggregates buffer-report stockout colours for one SKU at
// one warehouse location type
type StockoutCount struct {
	SKU          SKUCode
	LocationType LocationType
	BlackCount   int
	RedCount     int
}

// DispatchRecord is one historical dispatch line used for unit-price averaging
type DispatchRecord struct {
	SKU      SKUCode
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// UnitPrice returns Amount divided by Quantity. Callers must skip records
// with non-positive quantities.
func (d DispatchRecord) UnitPrice() decimal.Decimal {
	return d.Amount.Div(d.Quantity)
}

// CureTimeRecord holds the curing cycle time for one SKU
type CureTimeRecord struct {
	SKU         SKUCode
	CureMinutes float64
}
