package funds

import (
	"fmt"
	"sync"

	"marketplace-engine/internal/marketerrors"
)

// Ledger is a concurrency-safe in-memory native-currency balance ledger.
// Escrow held for a listing or auction lives in an ordinary account named
// after it, so one instance's custody can never bleed into another's.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]uint64
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]uint64)}
}

// Deposit credits an account out of thin air. Intended for tests and for
// seeding buyer balances from the external substrate.
func (l *Ledger) Deposit(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// BalanceOf returns an account's current balance
func (l *Ledger) BalanceOf(account string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// Transfer moves amount from one account to another as a single atomic step
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("transfer %d from %s: %w", amount, from, marketerrors.ErrInsufficientFunds)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
