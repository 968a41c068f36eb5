package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
	"ledger_go/internal/event"
)

// OrderBook holds the live orders of one trading symbol. An order present
// in the book is always OPEN; filled or cancelled orders are removed, not
// flagged. Only the event log retains their history.
type OrderBook struct {
	Root
	symbol string
	orders map[string]*domain.Order
}

// NewOrderBook creates an empty book for a symbol.
func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		Root:   NewRoot(symbol),
		symbol: symbol,
		orders: make(map[string]*domain.Order),
	}
}

func (b *OrderBook) Symbol() string { return b.symbol }

// HasOrder reports whether an order id is live in the book.
func (b *OrderBook) HasOrder(orderID string) bool {
	_, ok := b.orders[orderID]
	return ok
}

// Order returns a copy of a live order.
func (b *OrderBook) Order(orderID string) (domain.Order, bool) {
	o, ok := b.orders[orderID]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

// OpenOrders returns copies of all live orders sorted by order id.
func (b *OrderBook) OpenOrders() []domain.Order {
	out := make([]domain.Order, 0, len(b.orders))
	for _, o := range b.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

// PlaceOrder records an OrderPlaced event. Funds and duplicate-id checks
// are the caller's responsibility.
func (b *OrderBook) PlaceOrder(orderID, userID string, side domain.Side, quantity int64, price decimal.Decimal) {
	b.record(b, event.NewOrderPlaced(orderID, userID, b.symbol, side, quantity, price))
}

// CancelOrder records an OrderCancelled event for a live order.
func (b *OrderBook) CancelOrder(orderID, userID string) error {
	if !b.HasOrder(orderID) {
		return &domain.OrderNotFoundError{OrderID: orderID, Symbol: b.symbol}
	}
	b.record(b, event.NewOrderCancelled(orderID, userID, b.symbol))
	return nil
}

// ExecuteTrade records a TradeExecuted event for two live orders.
func (b *OrderBook) ExecuteTrade(buyOrderID, sellOrderID string, quantity int64, price decimal.Decimal) error {
	if !b.HasOrder(buyOrderID) {
		return &domain.OrderNotFoundError{OrderID: buyOrderID, Symbol: b.symbol}
	}
	if !b.HasOrder(sellOrderID) {
		return &domain.OrderNotFoundError{OrderID: sellOrderID, Symbol: b.symbol}
	}
	b.record(b, event.NewTradeExecuted(buyOrderID, sellOrderID, b.symbol, quantity, price))
	return nil
}

// Apply folds one event into the book. Events of other aggregates are a
// no-op but still advance the version.
func (b *OrderBook) Apply(e event.Event) {
	switch ev := e.(type) {
	case event.OrderPlaced:
		b.orders[ev.OrderID] = &domain.Order{
			OrderID:  ev.OrderID,
			UserID:   ev.UserID,
			Symbol:   ev.Symbol,
			Side:     ev.Side,
			Quantity: ev.Quantity,
			Price:    ev.Price,
			Status:   domain.OrderStatusOpen,
		}
	case event.OrderCancelled:
		delete(b.orders, ev.OrderID)
	case event.TradeExecuted:
		for _, id := range []string{ev.BuyOrderID, ev.SellOrderID} {
			if o, ok := b.orders[id]; ok {
				o.Status = domain.OrderStatusFilled
				delete(b.orders, id)
			}
		}
	}
	b.advance()
}
