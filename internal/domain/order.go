package domain

import "github.com/shopspring/decimal"

// Side represents the direction of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// IsValid checks if the side is one of the known directions.
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

const (
	OrderStatusOpen   = "OPEN"
	OrderStatusFilled = "FILLED"
)

// Order represents a live order inside an order book.
// Quantities are whole units; prices are decimal.
type Order struct {
	OrderID  string          `json:"order_id"`
	UserID   string          `json:"user_id"`
	Symbol   string          `json:"symbol"`
	Side     Side            `json:"side"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status"`
}

// IsOpen checks if the order is still active.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// Notional returns the order value (quantity * price).
func (o *Order) Notional() decimal.Decimal {
	return decimal.NewFromInt(o.Quantity).Mul(o.Price)
}
