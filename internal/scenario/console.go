package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/account"
)

// console drives accounts and writes their output, translating rejected
// postings into the messages a teller would print. The first write error
// sticks and silences later output.
type console struct {
	w   io.Writer
	err error
}

func (c *console) println(s string) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.w, s)
}

func (c *console) blank() {
	c.println("")
}

func (c *console) deposit(a *account.Account, amount decimal.Decimal) {
	if _, err := a.Deposit(amount); err != nil {
		c.println(Notice(err, false))
	}
}

func (c *console) withdraw(a *account.Account, amount decimal.Decimal) {
	if _, err := a.Withdraw(amount); err != nil {
		c.println(Notice(err, true))
	}
}

func (c *console) interest(a *account.Account) {
	if !a.Kind().EarnsInterest() {
		c.println(fmt.Sprintf("No interest calculated for %s Account.", a.Kind().Label()))
		return
	}
	// interest on an empty balance is a zero deposit, which tellers reject
	if !a.Balance().IsPositive() {
		c.println(Notice(account.ErrNonPositiveAmount, false))
		return
	}
	if _, err := a.CalculateInterest(); err != nil {
		c.println(Notice(err, false))
	}
}

func (c *console) execute(a *account.Account, amount decimal.Decimal) {
	if _, err := a.ExecuteTransaction(amount); err != nil {
		c.println(Notice(err, amount.IsNegative()))
	}
}

func (c *console) statement(a *account.Account) {
	if c.err != nil {
		return
	}
	c.err = a.PrintStatement(c.w)
}

func (c *console) details(a *account.Account) {
	if c.err != nil {
		return
	}
	c.err = a.PrintTransaction(c.w)
}

// Notice converts a rejected posting into its console message.
func Notice(err error, withdrawal bool) string {
	switch {
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, account.ErrNonPositiveAmount) && withdrawal:
		return "Withdrawal amount must be greater than zero."
	case errors.Is(err, account.ErrNonPositiveAmount):
		return "Deposit amount must be greater than zero."
	default:
		return err.Error()
	}
}
