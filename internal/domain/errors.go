package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned when a referenced order id is absent
	// from the book's live orders.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInsufficientFunds is returned when a debit or a BUY order would
	// exceed the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError carries the details of a rejected debit.
type InsufficientFundsError struct {
	UserID    string
	Requested decimal.Decimal
	Balance   decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: user=%s requested=%s balance=%s",
		e.UserID, e.Requested.String(), e.Balance.String())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// OrderNotFoundError carries the order id a cancel or trade referenced.
type OrderNotFoundError struct {
	OrderID string
	Symbol  string
}

func (e *OrderNotFoundError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("order not found: id=%s", e.OrderID)
	}
	return fmt.Sprintf("order not found: id=%s symbol=%s", e.OrderID, e.Symbol)
}

func (e *OrderNotFoundError) Is(target error) bool {
	return target == ErrOrderNotFound
}
