package repository

import (
	"ledger_go/internal/aggregate"
	"ledger_go/internal/event"
	"ledger_go/internal/eventstore"
)

// Repository reconstructs aggregates by replaying their relevant events
// from the store and persists newly produced events back. Every Get walks
// the full log; at this scope that linear cost is accepted over keeping
// per-aggregate indexes or snapshots.
type Repository[T aggregate.Aggregate] struct {
	store *eventstore.Store
	newFn func(id string) T
}

// New creates a repository for one aggregate type. newFn must return a
// fresh zero-state instance for the given identity.
func New[T aggregate.Aggregate](store *eventstore.Store, newFn func(id string) T) *Repository[T] {
	return &Repository[T]{store: store, newFn: newFn}
}

// Get returns the aggregate with the given identity, folded from every
// relevant event in the log in append order. Aggregates are ephemeral
// projections: each call produces an independent, freshly replayed
// instance.
func (r *Repository[T]) Get(id string) T {
	agg := r.newFn(id)
	for _, e := range r.store.AllEvents() {
		if relevant(id, e) {
			agg.Apply(e)
		}
	}
	return agg
}

// Save pulls the aggregate's pending events and appends them, in order,
// to the store.
func (r *Repository[T]) Save(agg T) {
	for _, e := range agg.PullEvents() {
		r.store.Append(e)
	}
}

// relevant decides whether an event belongs to an aggregate identity:
// order events match by symbol, funds events by user id.
func relevant(id string, e event.Event) bool {
	switch ev := e.(type) {
	case event.OrderPlaced:
		return ev.Symbol == id
	case event.OrderCancelled:
		return ev.Symbol == id
	case event.TradeExecuted:
		return ev.Symbol == id
	case event.FundsDebited:
		return ev.UserID == id
	case event.FundsCredited:
		return ev.UserID == id
	default:
		return false
	}
}
