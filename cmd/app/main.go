package main

import (
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"ledger_go/internal/app"
	"ledger_go/internal/domain"
	"ledger_go/internal/engine"
	"ledger_go/internal/event"
	"ledger_go/internal/eventstore"
	"ledger_go/internal/service"
)

func main() {
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	store := eventstore.New()
	dispatcher := engine.NewDispatcher(store)

	if err := runScenario(dispatcher, store); err != nil {
		slog.Error("scenario failed", slog.Any("error", err))
		os.Exit(1)
	}

	ledger := service.NewLedgerService(store)

	slog.Info("event log")
	for _, m := range ledger.EventLog() {
		slog.Info("event", slog.Any("event", m))
	}

	slog.Info("replayed order books")
	for _, symbol := range ledger.Symbols() {
		orders := ledger.OpenOrders(symbol)
		slog.Info("book",
			slog.String("symbol", symbol),
			slog.Int("open_orders", len(orders)),
			slog.Any("orders", orders))
	}

	slog.Info("replayed account balances")
	for user, balance := range ledger.Balances() {
		slog.Info("balance",
			slog.String("user_id", user),
			slog.String("balance", balance.String()))
	}

	if bootstrap.Archive != nil {
		if err := bootstrap.Archive.Export(store.AllEvents()); err != nil {
			slog.Error("archive export failed", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("event log archived", slog.Int("events", store.Len()))
	}
}

// runScenario replays the demo session: U1 funds and buys, U2 sells, the
// orders match at a higher price, then the money moves.
func runScenario(dispatcher *engine.Dispatcher, store *eventstore.Store) error {
	cmds := []engine.Command{
		engine.CreditFunds{UserID: "U1", Amount: decimal.NewFromInt(10_000)},
		engine.PlaceOrder{UserID: "U1", Symbol: "AAPL", Side: domain.SideBuy, Quantity: 50, Price: decimal.NewFromFloat(100.00)},
		engine.CreditFunds{UserID: "U2", Amount: decimal.Zero},
		engine.PlaceOrder{UserID: "U2", Symbol: "AAPL", Side: domain.SideSell, Quantity: 50, Price: decimal.NewFromFloat(100.00)},
	}
	for _, cmd := range cmds {
		if err := dispatcher.Handle(cmd); err != nil {
			return err
		}
	}

	// The dispatcher generates order ids; fetch them from the log.
	var buyOrderID, sellOrderID string
	for _, e := range store.AllEvents() {
		if placed, ok := e.(event.OrderPlaced); ok {
			switch placed.Side {
			case domain.SideBuy:
				buyOrderID = placed.OrderID
			case domain.SideSell:
				sellOrderID = placed.OrderID
			}
		}
	}

	tradePrice := decimal.NewFromFloat(190.00)
	cmds = []engine.Command{
		engine.ExecuteTrade{BuyOrderID: buyOrderID, SellOrderID: sellOrderID, Symbol: "AAPL", Quantity: 50, Price: tradePrice},
		engine.DebitFunds{UserID: "U1", Amount: decimal.NewFromInt(50).Mul(tradePrice)},
		engine.CreditFunds{UserID: "U2", Amount: decimal.NewFromInt(50).Mul(tradePrice)},
	}
	for _, cmd := range cmds {
		if err := dispatcher.Handle(cmd); err != nil {
			return err
		}
	}
	return nil
}
