package scenario

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/account"
	"github.com/congo-pay/bankaccounts/internal/bank"
	"github.com/congo-pay/bankaccounts/internal/logging"
)

const wantTranscript = `Account Number: SA001
Account Holder: John Doe
Balance: $5,775.00
Transaction History:
Deposit: $1,000.00
Withdrawal: -$500.00
Interest Deposit: $275.00

Account Number: CA001
Account Holder: Jane Smith
Balance: $1,900.00
Transaction History:
Deposit: $200.00
Withdrawal: -$300.00

Account Number: LA001
Account Holder: Alice Johnson
Balance: $10,450.00
Transaction History:
Withdrawal: -$500.00
Interest Deposit: $950.00

Transaction Details: Savings Account

Transaction Details: Checking Account

Transaction Details: Loan Account
`

func TestRunTranscript(t *testing.T) {
	var buf bytes.Buffer
	b, err := Run(&buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.String() != wantTranscript {
		t.Fatalf("unexpected transcript:\n%s\nwant:\n%s", buf.String(), wantTranscript)
	}

	if b.Len() != len(Registered) {
		t.Fatalf("expected %d registered accounts, got %d", len(Registered), b.Len())
	}
	if _, err := b.Get("SA002"); !errors.Is(err, bank.ErrAccountNotFound) {
		t.Fatalf("standalone accounts must not be registered")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunReportsWriteError(t *testing.T) {
	if _, err := Run(failingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestConsoleMessages(t *testing.T) {
	var buf bytes.Buffer
	c := &console{w: &buf}
	a := account.New("CA", "Holder", account.KindChecking, decimal.NewFromInt(10))

	c.deposit(a, decimal.Zero)
	c.withdraw(a, decimal.NewFromInt(-1))
	c.withdraw(a, decimal.NewFromInt(11))
	c.execute(a, decimal.NewFromInt(-20))
	c.interest(a)

	want := "Deposit amount must be greater than zero.\n" +
		"Withdrawal amount must be greater than zero.\n" +
		"Insufficient funds.\n" +
		"Insufficient funds.\n" +
		"No interest calculated for Checking Account.\n"
	if buf.String() != want {
		t.Fatalf("unexpected messages:\n%s", buf.String())
	}
	if !a.Balance().Equal(decimal.NewFromInt(10)) || len(a.Transactions()) != 0 {
		t.Fatalf("rejections must leave the account untouched")
	}
}

func TestConsoleInterestOnEmptyBalance(t *testing.T) {
	var buf bytes.Buffer
	c := &console{w: &buf}
	savings := account.New("SA", "Holder", account.KindSavings, decimal.Zero)
	loan := account.New("LA", "Holder", account.KindLoan, decimal.Zero)

	c.interest(savings)
	c.interest(loan)

	want := "Deposit amount must be greater than zero.\n" +
		"Deposit amount must be greater than zero.\n"
	if buf.String() != want {
		t.Fatalf("unexpected messages:\n%s", buf.String())
	}
	if len(savings.Transactions()) != 0 || len(loan.Transactions()) != 0 {
		t.Fatalf("interest on an empty balance must not post")
	}
}

func TestSeed(t *testing.T) {
	svc := bank.NewService(bank.NewBank(), nil, logging.Discard())
	ctx := context.Background()
	if err := Seed(ctx, svc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list := svc.List(ctx)
	if len(list) != 3 || list[2].ID != "LA001" || !list[2].Balance.Equal(decimal.NewFromInt(10_000)) {
		t.Fatalf("unexpected seeded accounts: %+v", list)
	}
	if err := Seed(ctx, svc); !errors.Is(err, bank.ErrDuplicateAccount) {
		t.Fatalf("expected duplicate error on reseed, got %v", err)
	}
}
