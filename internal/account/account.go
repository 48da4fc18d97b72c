package account

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/money"
)

// Account is a named balance with an append-only transaction history. The
// balance only changes through deposits and withdrawals.
type Account struct {
	id           string
	holder       string
	kind         Kind
	balance      decimal.Decimal
	transactions []Transaction
}

// New opens an account with the provided starting balance. The opening
// balance is not recorded as a transaction.
func New(id, holder string, kind Kind, initial decimal.Decimal) *Account {
	return &Account{id: id, holder: holder, kind: kind, balance: initial}
}

// ID is the registry key of the account.
func (a *Account) ID() string { return a.id }

// Holder is the account holder's name.
func (a *Account) Holder() string { return a.holder }

// Kind is the account's interest kind.
func (a *Account) Kind() Kind { return a.kind }

// Balance is the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Transactions returns a copy of the history in posting order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit credits amount with the default "Deposit" description.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	return a.DepositWithDescription(amount, DescriptionDeposit)
}

// DepositWithDescription credits amount and records it under description.
func (a *Account) DepositWithDescription(amount decimal.Decimal, description string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("deposit: %w", ErrNonPositiveAmount)
	}
	a.balance = a.balance.Add(amount)
	return a.record(amount, description), nil
}

// Withdraw debits amount with the default "Withdrawal" description.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	return a.WithdrawWithDescription(amount, DescriptionWithdrawal)
}

// WithdrawWithDescription debits amount and records a negative posting. The
// balance is never driven below zero.
func (a *Account) WithdrawWithDescription(amount decimal.Decimal, description string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("withdrawal: %w", ErrNonPositiveAmount)
	}
	if amount.GreaterThan(a.balance) {
		return Transaction{}, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.record(amount.Neg(), description), nil
}

// CalculateInterest credits the kind's rate applied to the current balance
// as an "Interest Deposit". Kinds without a rate, and zero balances, leave
// the account untouched and return a zero Transaction.
func (a *Account) CalculateInterest() (Transaction, error) {
	interest := a.balance.Mul(a.kind.Rate())
	if !interest.IsPositive() {
		return Transaction{}, nil
	}
	return a.DepositWithDescription(interest, DescriptionInterestDeposit)
}

// ExecuteTransaction routes a signed amount: non-negative amounts are
// deposited, negative amounts withdrawn, both as "Transaction".
func (a *Account) ExecuteTransaction(amount decimal.Decimal) (Transaction, error) {
	if amount.IsNegative() {
		return a.WithdrawWithDescription(amount.Neg(), DescriptionTransaction)
	}
	return a.DepositWithDescription(amount, DescriptionTransaction)
}

// Statement renders the account summary followed by its history.
func (a *Account) Statement() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Number: %s\n", a.id)
	fmt.Fprintf(&b, "Account Holder: %s\n", a.holder)
	fmt.Fprintf(&b, "Balance: %s\n", money.Format(a.balance))
	b.WriteString("Transaction History:\n")
	for _, t := range a.transactions {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintStatement writes Statement to w.
func (a *Account) PrintStatement(w io.Writer) error {
	_, err := io.WriteString(w, a.Statement())
	return err
}

// PrintTransaction writes the one-line kind banner to w.
func (a *Account) PrintTransaction(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Transaction Details: %s Account\n", a.kind.Label())
	return err
}

func (a *Account) record(amount decimal.Decimal, description string) Transaction {
	t := newTransaction(amount, description)
	a.transactions = append(a.transactions, t)
	return t
}
