package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const symbol = "$"

// Format renders an amount the way statements print it: US dollars, two
// fractional digits rounded half away from zero, and thousands grouping,
// e.g. $1,234.50 or -$500.00. Whole-dollar parts must fit in an int64.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	rounded = rounded.Abs()

	fixed := rounded.StringFixed(2)
	cents := fixed[len(fixed)-3:]

	p := message.NewPrinter(language.AmericanEnglish)
	return sign + symbol + p.Sprint(number.Decimal(rounded.IntPart())) + cents
}
