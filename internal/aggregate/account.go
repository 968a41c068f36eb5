package aggregate

import (
	"github.com/shopspring/decimal"

	"ledger_go/internal/domain"
	"ledger_go/internal/event"
)

// Account holds the balance of one user. The balance only ever changes
// through FundsDebited and FundsCredited events.
type Account struct {
	Root
	userID  string
	balance decimal.Decimal
}

// NewAccount creates a zero-balance account for a user.
func NewAccount(userID string) *Account {
	return &Account{
		Root:    NewRoot(userID),
		userID:  userID,
		balance: decimal.Zero,
	}
}

func (a *Account) UserID() string { return a.userID }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// CanCover reports whether the balance covers the given amount.
func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(amount)
}

// Debit records a FundsDebited event. The balance must never go negative,
// so a debit exceeding it is rejected before anything is recorded.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return &domain.InsufficientFundsError{
			UserID:    a.userID,
			Requested: amount,
			Balance:   a.balance,
		}
	}
	a.record(a, event.NewFundsDebited(a.userID, amount))
	return nil
}

// Credit records a FundsCredited event.
func (a *Account) Credit(amount decimal.Decimal) {
	a.record(a, event.NewFundsCredited(a.userID, amount))
}

// Apply folds one event into the account. Events of other aggregates are
// a no-op but still advance the version.
func (a *Account) Apply(e event.Event) {
	switch ev := e.(type) {
	case event.FundsDebited:
		a.balance = a.balance.Sub(ev.Amount)
	case event.FundsCredited:
		a.balance = a.balance.Add(ev.Amount)
	}
	a.advance()
}
