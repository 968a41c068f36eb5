package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger_go/internal/aggregate"
	"ledger_go/internal/domain"
	"ledger_go/internal/event"
	"ledger_go/internal/eventstore"
	"ledger_go/internal/infra"
	"ledger_go/internal/repository"
)

// ErrUnroutableCommand is returned for a command type without a handler.
// The command set is closed, so this is a defensive case.
var ErrUnroutableCommand = errors.New("unroutable command")

// Dispatcher turns commands into validated events. Commands are processed
// synchronously and sequentially; a failure surfaces before any event is
// recorded, so the log never holds a partial transition. The dispatcher
// holds no state of its own beyond its repository references.
type Dispatcher struct {
	store    *eventstore.Store
	books    *repository.Repository[*aggregate.OrderBook]
	accounts *repository.Repository[*aggregate.Account]
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given store.
func NewDispatcher(store *eventstore.Store) *Dispatcher {
	return &Dispatcher{
		store:    store,
		books:    repository.New(store, aggregate.NewOrderBook),
		accounts: repository.New(store, aggregate.NewAccount),
		logger:   slog.Default(),
	}
}

// Handle routes one command to its handler. All failures are synchronous;
// nothing is retried or compensated.
func (d *Dispatcher) Handle(cmd Command) error {
	start := time.Now()
	lenBefore := d.store.Len()

	if err := d.dispatch(cmd); err != nil {
		infra.GlobalMetrics.RecordRejection()
		return err
	}

	infra.GlobalMetrics.RecordCommand(time.Since(start).Nanoseconds())
	infra.GlobalMetrics.RecordEventsAppended(d.store.Len() - lenBefore)
	return nil
}

func (d *Dispatcher) dispatch(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch c := cmd.(type) {
	case PlaceOrder:
		return d.handlePlaceOrder(c)
	case CancelOrder:
		return d.handleCancelOrder(c)
	case DebitFunds:
		return d.handleDebitFunds(c)
	case CreditFunds:
		return d.handleCreditFunds(c)
	case ExecuteTrade:
		return d.handleExecuteTrade(c)
	default:
		return fmt.Errorf("%w: %T", ErrUnroutableCommand, cmd)
	}
}

func (d *Dispatcher) handlePlaceOrder(cmd PlaceOrder) error {
	// Advisory cross-aggregate check: a BUY must be covered by the
	// user's balance before any event is produced.
	if cmd.Side == domain.SideBuy {
		acct := d.accounts.Get(cmd.UserID)
		notional := decimal.NewFromInt(cmd.Quantity).Mul(cmd.Price)
		if !acct.CanCover(notional) {
			return &domain.InsufficientFundsError{
				UserID:    cmd.UserID,
				Requested: notional,
				Balance:   acct.Balance(),
			}
		}
	}

	book := d.books.Get(cmd.Symbol)
	orderID := uuid.NewString()
	book.PlaceOrder(orderID, cmd.UserID, cmd.Side, cmd.Quantity, cmd.Price)
	d.books.Save(book)

	d.logger.Debug("order placed",
		slog.String("order_id", orderID),
		slog.String("user_id", cmd.UserID),
		slog.String("symbol", cmd.Symbol),
		slog.String("side", string(cmd.Side)))
	return nil
}

// handleCancelOrder has no symbol context, so it replays every book whose
// symbol appears in the log and acts on the first one holding the order.
// No order-id index exists; the scan is linear in symbols seen.
func (d *Dispatcher) handleCancelOrder(cmd CancelOrder) error {
	for _, symbol := range d.symbolsSeen() {
		book := d.books.Get(symbol)
		if !book.HasOrder(cmd.OrderID) {
			continue
		}
		if err := book.CancelOrder(cmd.OrderID, cmd.UserID); err != nil {
			return err
		}
		d.books.Save(book)
		d.logger.Debug("order cancelled",
			slog.String("order_id", cmd.OrderID),
			slog.String("symbol", symbol))
		return nil
	}
	return &domain.OrderNotFoundError{OrderID: cmd.OrderID}
}

func (d *Dispatcher) handleDebitFunds(cmd DebitFunds) error {
	acct := d.accounts.Get(cmd.UserID)
	if err := acct.Debit(cmd.Amount); err != nil {
		return err
	}
	d.accounts.Save(acct)
	return nil
}

func (d *Dispatcher) handleCreditFunds(cmd CreditFunds) error {
	acct := d.accounts.Get(cmd.UserID)
	acct.Credit(cmd.Amount)
	d.accounts.Save(acct)
	return nil
}

func (d *Dispatcher) handleExecuteTrade(cmd ExecuteTrade) error {
	book := d.books.Get(cmd.Symbol)
	if err := book.ExecuteTrade(cmd.BuyOrderID, cmd.SellOrderID, cmd.Quantity, cmd.Price); err != nil {
		return err
	}
	d.books.Save(book)

	d.logger.Debug("trade executed",
		slog.String("buy_order_id", cmd.BuyOrderID),
		slog.String("sell_order_id", cmd.SellOrderID),
		slog.String("symbol", cmd.Symbol))
	return nil
}

// symbolsSeen returns every symbol referenced by an order event in the
// log, in first-seen order.
func (d *Dispatcher) symbolsSeen() []string {
	seen := make(map[string]struct{})
	var symbols []string
	add := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			symbols = append(symbols, s)
		}
	}
	for _, e := range d.store.AllEvents() {
		switch ev := e.(type) {
		case event.OrderPlaced:
			add(ev.Symbol)
		case event.OrderCancelled:
			add(ev.Symbol)
		case event.TradeExecuted:
			add(ev.Symbol)
		}
	}
	return symbols
}
