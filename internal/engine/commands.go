package engine

import (
	"errors"

	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
)

// Command expresses external intent. The set is closed: each command is
// validated and translated into zero or more events by the dispatcher.
type Command interface {
	isCommand()
	Validate() error
}

// PlaceOrder asks for a new order in the book of Symbol. The order id is
// generated by the dispatcher.
type PlaceOrder struct {
	UserID   string
	Symbol   string
	Side     domain.Side
	Quantity int64
	Price    decimal.Decimal
}

func (PlaceOrder) isCommand() {}

func (c PlaceOrder) Validate() error {
	if c.UserID == "" {
		return errors.New("user_id required")
	}
	if c.Symbol == "" {
		return errors.New("symbol required")
	}
	if !c.Side.IsValid() {
		return errors.New("invalid side")
	}
	if c.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if !c.Price.IsPositive() {
		return errors.New("price must be positive")
	}
	return nil
}

// CancelOrder asks to remove a live order. It carries no symbol, so the
// dispatcher searches every book seen in the log.
type CancelOrder struct {
	OrderID string
	UserID  string
}

func (CancelOrder) isCommand() {}

func (c CancelOrder) Validate() error {
	if c.OrderID == "" {
		return errors.New("order_id required")
	}
	if c.UserID == "" {
		return errors.New("user_id required")
	}
	return nil
}

// DebitFunds asks to decrease a user's balance.
type DebitFunds struct {
	UserID string
	Amount decimal.Decimal
}

func (DebitFunds) isCommand() {}

func (c DebitFunds) Validate() error {
	if c.UserID == "" {
		return errors.New("user_id required")
	}
	if c.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

// CreditFunds asks to increase a user's balance.
type CreditFunds struct {
	UserID string
	Amount decimal.Decimal
}

func (CreditFunds) isCommand() {}

func (c CreditFunds) Validate() error {
	if c.UserID == "" {
		return errors.New("user_id required")
	}
	if c.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

// ExecuteTrade asks to record that two orders matched. Matching itself
// happens elsewhere; the ledger only records the fact.
type ExecuteTrade struct {
	BuyOrderID  string
	SellOrderID string
	Symbol      string
	Quantity    int64
	Price       decimal.Decimal
}

func (ExecuteTrade) isCommand() {}

func (c ExecuteTrade) Validate() error {
	if c.BuyOrderID == "" || c.SellOrderID == "" {
		return errors.New("buy and sell order ids required")
	}
	if c.Symbol == "" {
		return errors.New("symbol required")
	}
	if c.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if !c.Price.IsPositive() {
		return errors.New("price must be positive")
	}
	return nil
}
