package bank

import (
	"fmt"

	"github.com/congo-pay/bankaccounts/internal/account"
)

// Bank is the in-memory registry of accounts keyed by account id. Accounts
// are only ever inserted. Bank is not safe for concurrent use; Service
// serialises access for the HTTP surface.
type Bank struct {
	accounts map[string]*account.Account
	order    []string
}

// NewBank returns an empty registry.
func NewBank() *Bank {
	return &Bank{accounts: make(map[string]*account.Account)}
}

// Add registers an account under its id.
func (b *Bank) Add(a *account.Account) error {
	if _, exists := b.accounts[a.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, a.ID())
	}
	b.accounts[a.ID()] = a
	b.order = append(b.order, a.ID())
	return nil
}

// Get returns the live account registered under id.
func (b *Bank) Get(id string) (*account.Account, error) {
	a, ok := b.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return a, nil
}

// List returns accounts in registration order.
func (b *Bank) List() []*account.Account {
	out := make([]*account.Account, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.accounts[id])
	}
	return out
}

// Len reports how many accounts are registered.
func (b *Bank) Len() int {
	return len(b.accounts)
}
