package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Market identifies the demand channel a SKU is ordered through
type Market string

const (
	MarketOE  Market = "OE"  // original equipment
	MarketST  Market = "ST"  // stock transfer
	MarketEXP Market = "EXP" // export
	MarketRE  Market = "RE"  // replacement
)

// ParseMarket converts a raw market code into a Market
func ParseMarket(s string) (Market, error) {
	switch Market(strings.ToUpper(strings.TrimSpace(s))) {
	case MarketOE:
		return MarketOE, nil
	case MarketST:
		return MarketST, nil
	case MarketEXP:
		return MarketEXP, nil
	case MarketRE:
		return MarketRE, nil
	default:
		return "", fmt.Errorf("unknown market code: %q", s)
	}
}

// Source distinguishes automated pipeline rows from manual overrides
type Source string

const (
	SourceAutomated Source = "Automated"
	SourceManual    Source = "Manual"
)

// LocationType classifies a warehouse location for inventory weighting
type LocationType string

const (
	LocationJIT           LocationType = "JIT"
	LocationDepot         LocationType = "Depot"
	LocationDepotMobility LocationType = "Depot Mobility"
	LocationFeeder        LocationType = "Feeder"
	LocationPWH           LocationType = "PWH"
)

// SKUCode is the stable join key for a stock-keeping unit across all sources
type SKUCode string

func (s SKUCode) String() string {
	return string(s)
}

// RimSize extracts the rim size in inches encoded at the 9th and 10th
// characters of the SKU code. Returns 0 for short or non-numeric codes.
func (s SKUCode) RimSize() int {
	if len(s) < 10 {
		return 0
	}
	size, err := strconv.Atoi(string(s)[8:10])
	if err != nil {
		return 0
	}
	return size
}
