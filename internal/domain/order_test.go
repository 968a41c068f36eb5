package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSideIsValid(t *testing.T) {
	if !SideBuy.IsValid() || !SideSell.IsValid() {
		t.Error("BUY and SELL should be valid sides")
	}
	if Side("SHORT").IsValid() {
		t.Error("unknown side should be invalid")
	}
}

func TestOrderIsOpen(t *testing.T) {
	o := Order{Status: OrderStatusOpen}
	if !o.IsOpen() {
		t.Error("OPEN order should be open")
	}
	o.Status = OrderStatusFilled
	if o.IsOpen() {
		t.Error("FILLED order should not be open")
	}
}

func TestOrderNotional(t *testing.T) {
	o := Order{Quantity: 50, Price: decimal.NewFromFloat(100.00)}
	if !o.Notional().Equal(decimal.NewFromInt(5_000)) {
		t.Errorf("expected notional 5000, got %s", o.Notional())
	}
}
