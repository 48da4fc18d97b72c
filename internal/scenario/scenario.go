package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/account"
	"github.com/congo-pay/bankaccounts/internal/bank"
)

// Opening describes one of the scripted accounts.
type Opening struct {
	ID      string
	Holder  string
	Kind    account.Kind
	Balance decimal.Decimal
}

// Registered are the accounts the script adds to the bank.
var Registered = []Opening{
	{ID: "SA001", Holder: "John Doe", Kind: account.KindSavings, Balance: decimal.NewFromInt(5_000)},
	{ID: "CA001", Holder: "Jane Smith", Kind: account.KindChecking, Balance: decimal.NewFromInt(2_000)},
	{ID: "LA001", Holder: "Alice Johnson", Kind: account.KindLoan, Balance: decimal.NewFromInt(10_000)},
}

// standalone accounts exercise ExecuteTransaction outside the bank.
var standalone = []struct {
	Opening
	amount decimal.Decimal
}{
	{Opening{ID: "SA002", Holder: "Mark Davis", Kind: account.KindSavings, Balance: decimal.NewFromInt(5_000)}, decimal.NewFromInt(1_000)},
	{Opening{ID: "CA002", Holder: "Amy Johnson", Kind: account.KindChecking, Balance: decimal.NewFromInt(2_000)}, decimal.NewFromInt(-500)},
	{Opening{ID: "LA002", Holder: "Michael Smith", Kind: account.KindLoan, Balance: decimal.NewFromInt(10_000)}, decimal.NewFromInt(-1_000)},
}

func (o Opening) open() *account.Account {
	return account.New(o.ID, o.Holder, o.Kind, o.Balance)
}

// Run plays the scripted session against a fresh bank and writes the
// transcript to w. It returns the bank so callers can inspect final state.
func Run(w io.Writer) (*bank.Bank, error) {
	b := bank.NewBank()
	accounts := make([]*account.Account, 0, len(Registered))
	for _, o := range Registered {
		a := o.open()
		if err := b.Add(a); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	savings, checking, loan := accounts[0], accounts[1], accounts[2]

	c := &console{w: w}

	c.deposit(savings, decimal.NewFromInt(1_000))
	c.withdraw(savings, decimal.NewFromInt(500))
	c.interest(savings)
	c.statement(savings)
	c.blank()

	c.deposit(checking, decimal.NewFromInt(200))
	c.withdraw(checking, decimal.NewFromInt(300))
	c.statement(checking)
	c.blank()

	c.withdraw(loan, decimal.NewFromInt(500))
	c.interest(loan)
	c.statement(loan)

	for _, s := range standalone {
		c.blank()
		a := s.open()
		c.execute(a, s.amount)
		c.details(a)
	}

	if c.err != nil {
		return nil, fmt.Errorf("write transcript: %w", c.err)
	}
	return b, nil
}

// Seed opens the registered scripted accounts through svc, leaving them at
// their opening balances.
func Seed(ctx context.Context, svc *bank.Service) error {
	for _, o := range Registered {
		if _, err := svc.Open(ctx, bank.OpenInput{ID: o.ID, Holder: o.Holder, Kind: o.Kind.String(), InitialBalance: o.Balance}); err != nil {
			return fmt.Errorf("seed %s: %w", o.ID, err)
		}
	}
	return nil
}
