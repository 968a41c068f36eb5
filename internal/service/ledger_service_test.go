package service

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
	"ledger_go/internal/event"
	"ledger_go/internal/eventstore"
)

func seedStore() *eventstore.Store {
	store := eventstore.New()
	store.Append(event.NewFundsCredited("U1", decimal.NewFromInt(10_000)))
	store.Append(event.NewOrderPlaced("o-1", "U1", "AAPL", domain.SideBuy, 50, decimal.NewFromInt(100)))
	store.Append(event.NewOrderPlaced("o-2", "U2", "MSFT", domain.SideSell, 10, decimal.NewFromInt(300)))
	store.Append(event.NewFundsDebited("U1", decimal.NewFromInt(4_000)))
	return store
}

func TestSymbolsAndUsers(t *testing.T) {
	s := NewLedgerService(seedStore())

	if got, want := s.Symbols(), []string{"AAPL", "MSFT"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols: expected %v, got %v", want, got)
	}
	if got, want := s.Users(), []string{"U1", "U2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Users: expected %v, got %v", want, got)
	}
}

func TestOpenOrders(t *testing.T) {
	s := NewLedgerService(seedStore())

	orders := s.OpenOrders("AAPL")
	if len(orders) != 1 || orders[0].OrderID != "o-1" {
		t.Errorf("unexpected AAPL orders: %+v", orders)
	}
	if len(s.OpenOrders("TSLA")) != 0 {
		t.Error("unknown symbol should replay to an empty book")
	}
}

func TestBalances(t *testing.T) {
	s := NewLedgerService(seedStore())

	balances := s.Balances()
	if !balances["U1"].Equal(decimal.NewFromInt(6_000)) {
		t.Errorf("U1: expected 6000, got %s", balances["U1"])
	}
	if !balances["U2"].IsZero() {
		t.Errorf("U2: expected 0, got %s", balances["U2"])
	}
}

func TestEventLogProjections(t *testing.T) {
	store := seedStore()
	s := NewLedgerService(store)

	log := s.EventLog()
	if len(log) != store.Len() {
		t.Fatalf("expected %d projections, got %d", store.Len(), len(log))
	}
	if log[0]["type"] != "FundsCredited" || log[1]["type"] != "OrderPlaced" {
		t.Error("projections should keep append order")
	}
	for i, m := range log {
		if m["id"] == "" || m["occurred_on"] == "" {
			t.Errorf("projection %d missing identity fields: %v", i, m)
		}
	}
}
