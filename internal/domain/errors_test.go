package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInsufficientFundsError(t *testing.T) {
	err := &InsufficientFundsError{
		UserID:    "U1",
		Requested: decimal.NewFromInt(5_000),
		Balance:   decimal.NewFromInt(100),
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("detail error should match the sentinel")
	}
	want := "insufficient funds: user=U1 requested=5000 balance=100"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOrderNotFoundError(t *testing.T) {
	err := &OrderNotFoundError{OrderID: "o-1", Symbol: "AAPL"}

	if !errors.Is(err, ErrOrderNotFound) {
		t.Error("detail error should match the sentinel")
	}
	if err.Error() != "order not found: id=o-1 symbol=AAPL" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	bare := &OrderNotFoundError{OrderID: "o-1"}
	if bare.Error() != "order not found: id=o-1" {
		t.Errorf("unexpected message without symbol: %q", bare.Error())
	}
}
