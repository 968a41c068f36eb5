package aggregate

import "ledger_go/internal/event"

// Aggregate is an entity whose state is derived entirely by folding its
// events in order. Version counts every event ever applied, replayed or
// newly recorded.
type Aggregate interface {
	ID() string
	Version() int64
	// Apply folds one event into state and advances the version. It is
	// the single mutation path, shared by live recording and replay, so
	// reconstructed state is exactly what live state would have been.
	Apply(e event.Event)
	// PullEvents returns and clears the buffer of not-yet-persisted events.
	PullEvents() []event.Event
}

// Root is the embedded base for concrete aggregates.
type Root struct {
	id      string
	version int64
	pending []event.Event
}

// NewRoot creates a zero-state root with the given identity.
func NewRoot(id string) Root {
	return Root{id: id}
}

func (r *Root) ID() string { return r.id }

func (r *Root) Version() int64 { return r.version }

// PullEvents returns the pending events and clears the buffer. The
// repository calls this exactly once per persistence cycle.
func (r *Root) PullEvents() []event.Event {
	out := r.pending
	r.pending = nil
	return out
}

// record buffers the event and immediately folds it through the
// aggregate's own Apply. Replay calls Apply directly, so both paths run
// the identical fold.
func (r *Root) record(agg Aggregate, e event.Event) {
	r.pending = append(r.pending, e)
	agg.Apply(e)
}

// advance increments the version counter. Every Apply calls this once,
// unrecognized event types included.
func (r *Root) advance() {
	r.version++
}
