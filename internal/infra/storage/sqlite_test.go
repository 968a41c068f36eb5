package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
	"ledger_go/internal/event"
)

func setupArchive(t *testing.T) *Archive {
	a, err := NewArchive(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	return a
}

func sampleEvents() []event.Event {
	return []event.Event{
		event.NewFundsCredited("U1", decimal.NewFromInt(10_000)),
		event.NewOrderPlaced("o-1", "U1", "AAPL", domain.SideBuy, 50, decimal.NewFromFloat(100.00)),
		event.NewOrderCancelled("o-1", "U1", "AAPL"),
	}
}

func TestExportAndReadBack(t *testing.T) {
	a := setupArchive(t)
	events := sampleEvents()

	if err := a.Export(events); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	n, err := a.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != int64(len(events)) {
		t.Errorf("expected %d rows, got %d", len(events), n)
	}

	rows, err := a.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if rows[0].Type != "FundsCredited" || rows[1].Type != "OrderPlaced" || rows[2].Type != "OrderCancelled" {
		t.Error("rows should keep export order")
	}
	if rows[1].EventID != events[1].EventID().String() {
		t.Errorf("expected event id %s, got %s", events[1].EventID(), rows[1].EventID)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(rows[1].Payload), &payload); err != nil {
		t.Fatalf("payload should be valid JSON: %v", err)
	}
	if payload["symbol"] != "AAPL" || payload["side"] != "BUY" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestExportIsIdempotent(t *testing.T) {
	a := setupArchive(t)
	events := sampleEvents()

	if err := a.Export(events); err != nil {
		t.Fatalf("first export: %v", err)
	}
	// Re-exporting a grown log must only add the new tail.
	grown := append(events, event.NewFundsDebited("U1", decimal.NewFromInt(500)))
	if err := a.Export(grown); err != nil {
		t.Fatalf("second export: %v", err)
	}

	n, err := a.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != int64(len(grown)) {
		t.Errorf("expected %d rows after re-export, got %d", len(grown), n)
	}
}
