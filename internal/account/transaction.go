package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/money"
)

const (
	// DescriptionDeposit labels a plain deposit.
	DescriptionDeposit = "Deposit"
	// DescriptionWithdrawal labels a plain withdrawal.
	DescriptionWithdrawal = "Withdrawal"
	// DescriptionInterestDeposit labels credited interest.
	DescriptionInterestDeposit = "Interest Deposit"
	// DescriptionTransaction labels postings made through ExecuteTransaction.
	DescriptionTransaction = "Transaction"
)

// Transaction is a signed posting against an account. Withdrawals carry a
// negative amount.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Description string
}

func newTransaction(amount decimal.Decimal, description string) Transaction {
	return Transaction{ID: uuid.NewString(), Amount: amount, Description: description}
}

// String renders the transaction as a statement line.
func (t Transaction) String() string {
	return t.Description + ": " + money.Format(t.Amount)
}
