package entities

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMouldHealth(t *testing.T) {
	a := MachineAssignment{Machine: "CURING-01", SKU: "TY195R5516TLA1", MouldLife: 4500, TargetLife: 5000}
	health, ok := a.MouldHealth()
	if !ok {
		t.Fatal("expected a defined health ratio")
	}
	if math.Abs(health-0.9) > 1e-9 {
		t.Errorf("health = %g, want 0.9", health)
	}
}

func TestMouldHealthUndefinedTarget(t *testing.T) {
	for _, target := range []float64{0, -100} {
		a := MachineAssignment{MouldLife: 4500, TargetLife: target}
		if _, ok := a.MouldHealth(); ok {
			t.Errorf("target life %g should make the ratio undefined", target)
		}
	}
}

func TestDispatchUnitPrice(t *testing.T) {
	d := DispatchRecord{
		SKU:      "TY195R5516TLA1",
		Quantity: decimal.NewFromInt(8),
		Amount:   decimal.NewFromInt(44000),
	}
	if got := d.UnitPrice(); !got.Equal(decimal.NewFromInt(5500)) {
		t.Errorf("unit price = %s, want 5500", got)
	}
}
