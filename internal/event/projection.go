package event

import "time"

// ToMap renders an event as a flat mapping: id, occurred_on (RFC3339),
// a type discriminator, and the event-specific fields. This is the
// canonical external representation used for logging and export.
func ToMap(e Event) map[string]any {
	m := map[string]any{
		"id":          e.EventID().String(),
		"occurred_on": e.OccurredOn().UTC().Format(time.RFC3339Nano),
		"type":        e.EventType(),
	}

	switch ev := e.(type) {
	case OrderPlaced:
		m["order_id"] = ev.OrderID
		m["user_id"] = ev.UserID
		m["symbol"] = ev.Symbol
		m["side"] = string(ev.Side)
		m["quantity"] = ev.Quantity
		m["price"] = ev.Price.String()
	case OrderCancelled:
		m["order_id"] = ev.OrderID
		m["user_id"] = ev.UserID
		m["symbol"] = ev.Symbol
	case TradeExecuted:
		m["buy_order_id"] = ev.BuyOrderID
		m["sell_order_id"] = ev.SellOrderID
		m["symbol"] = ev.Symbol
		m["quantity"] = ev.Quantity
		m["price"] = ev.Price.String()
	case FundsDebited:
		m["user_id"] = ev.UserID
		m["amount"] = ev.Amount.String()
	case FundsCredited:
		m["user_id"] = ev.UserID
		m["amount"] = ev.Amount.String()
	}

	return m
}
