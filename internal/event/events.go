package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
)

// Event is an immutable fact recorded in the ledger. Every event binds a
// unique id and a timestamp at construction and is never modified after.
type Event interface {
	EventID() uuid.UUID
	EventType() string
	OccurredOn() time.Time
}

// BaseEvent carries the identity and timestamp shared by all events.
type BaseEvent struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"occurred_on"`
}

func newBase() BaseEvent {
	return BaseEvent{ID: uuid.New(), Timestamp: time.Now().UTC()}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) OccurredOn() time.Time { return e.Timestamp }

// OrderPlaced records that a new order entered a book.
type OrderPlaced struct {
	BaseEvent
	OrderID  string          `json:"order_id"`
	UserID   string          `json:"user_id"`
	Symbol   string          `json:"symbol"`
	Side     domain.Side     `json:"side"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func NewOrderPlaced(orderID, userID, symbol string, side domain.Side, quantity int64, price decimal.Decimal) OrderPlaced {
	return OrderPlaced{
		BaseEvent: newBase(),
		OrderID:   orderID,
		UserID:    userID,
		Symbol:    symbol,
		Side:      side,
		Quantity:  quantity,
		Price:     price,
	}
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// OrderCancelled records that an order left a book before filling.
type OrderCancelled struct {
	BaseEvent
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Symbol  string `json:"symbol"`
}

func NewOrderCancelled(orderID, userID, symbol string) OrderCancelled {
	return OrderCancelled{
		BaseEvent: newBase(),
		OrderID:   orderID,
		UserID:    userID,
		Symbol:    symbol,
	}
}

func (e OrderCancelled) EventType() string { return "OrderCancelled" }

// TradeExecuted records that a buy and a sell order matched.
type TradeExecuted struct {
	BaseEvent
	BuyOrderID  string          `json:"buy_order_id"`
	SellOrderID string          `json:"sell_order_id"`
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func NewTradeExecuted(buyOrderID, sellOrderID, symbol string, quantity int64, price decimal.Decimal) TradeExecuted {
	return TradeExecuted{
		BaseEvent:   newBase(),
		BuyOrderID:  buyOrderID,
		SellOrderID: sellOrderID,
		Symbol:      symbol,
		Quantity:    quantity,
		Price:       price,
	}
}

func (e TradeExecuted) EventType() string { return "TradeExecuted" }

// FundsDebited records a decrease of an account balance.
type FundsDebited struct {
	BaseEvent
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

func NewFundsDebited(userID string, amount decimal.Decimal) FundsDebited {
	return FundsDebited{BaseEvent: newBase(), UserID: userID, Amount: amount}
}

func (e FundsDebited) EventType() string { return "FundsDebited" }

// FundsCredited records an increase of an account balance.
type FundsCredited struct {
	BaseEvent
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

func NewFundsCredited(userID string, amount decimal.Decimal) FundsCredited {
	return FundsCredited{BaseEvent: newBase(), UserID: userID, Amount: amount}
}

func (e FundsCredited) EventType() string { return "FundsCredited" }
