package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"ledger_go/internal/aggregate"
	"ledger_go/internal/domain"
	"ledger_go/internal/event"
	"ledger_go/internal/eventstore"
	"ledger_go/internal/repository"
)

// LedgerService is the query side of the ledger: a read model replayed
// from the event log on every call. It never produces events.
type LedgerService struct {
	store    *eventstore.Store
	books    *repository.Repository[*aggregate.OrderBook]
	accounts *repository.Repository[*aggregate.Account]
}

// NewLedgerService creates a query service over the given store.
func NewLedgerService(store *eventstore.Store) *LedgerService {
	return &LedgerService{
		store:    store,
		books:    repository.New(store, aggregate.NewOrderBook),
		accounts: repository.New(store, aggregate.NewAccount),
	}
}

// OpenOrders returns the live orders of a symbol sorted by order id.
func (s *LedgerService) OpenOrders(symbol string) []domain.Order {
	return s.books.Get(symbol).OpenOrders()
}

// Balance returns the current balance of a user.
func (s *LedgerService) Balance(userID string) decimal.Decimal {
	return s.accounts.Get(userID).Balance()
}

// Symbols returns all symbols referenced by order events, sorted.
func (s *LedgerService) Symbols() []string {
	seen := make(map[string]struct{})
	for _, e := range s.store.AllEvents() {
		switch ev := e.(type) {
		case event.OrderPlaced:
			seen[ev.Symbol] = struct{}{}
		case event.OrderCancelled:
			seen[ev.Symbol] = struct{}{}
		case event.TradeExecuted:
			seen[ev.Symbol] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Users returns all user ids referenced by events, sorted.
func (s *LedgerService) Users() []string {
	seen := make(map[string]struct{})
	for _, e := range s.store.AllEvents() {
		switch ev := e.(type) {
		case event.OrderPlaced:
			seen[ev.UserID] = struct{}{}
		case event.OrderCancelled:
			seen[ev.UserID] = struct{}{}
		case event.FundsDebited:
			seen[ev.UserID] = struct{}{}
		case event.FundsCredited:
			seen[ev.UserID] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Balances returns the replayed balance of every user seen in the log.
func (s *LedgerService) Balances() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, userID := range s.Users() {
		out[userID] = s.Balance(userID)
	}
	return out
}

// EventLog returns the canonical projections of the full log in append
// order, for logging and export.
func (s *LedgerService) EventLog() []map[string]any {
	events := s.store.AllEvents()
	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		out = append(out, event.ToMap(e))
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
