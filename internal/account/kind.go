package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tags an account with its interest rate and display label.
type Kind string

const (
	// KindSavings earns 5% interest.
	KindSavings Kind = "savings"
	// KindChecking earns no interest.
	KindChecking Kind = "checking"
	// KindLoan accrues 10% interest.
	KindLoan Kind = "loan"
)

type kindInfo struct {
	rate  decimal.Decimal
	label string
}

var kinds = map[Kind]kindInfo{
	KindSavings:  {rate: decimal.RequireFromString("0.05"), label: "Savings"},
	KindChecking: {rate: decimal.Zero, label: "Checking"},
	KindLoan:     {rate: decimal.RequireFromString("0.1"), label: "Loan"},
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Rate is the fraction of the balance credited by CalculateInterest.
func (k Kind) Rate() decimal.Decimal {
	return kinds[k].rate
}

// Label is the human-readable name used in transaction details.
func (k Kind) Label() string {
	return kinds[k].label
}

// EarnsInterest reports whether CalculateInterest can ever post for this kind.
func (k Kind) EarnsInterest() bool {
	return k.Rate().IsPositive()
}

func (k Kind) String() string {
	return string(k)
}
