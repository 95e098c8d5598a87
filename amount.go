package cashbook

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal value from user input text.
func ParseAmount(str string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, str)
	}
	return d, nil
}

// DisplayMoney formats a decimal value with the conventions of the given
// currency code (e.g. "$1,234.50" for USD). Unknown codes fall back to a
// plain two-decimal rendition.
func DisplayMoney(v decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return v.StringFixed(2)
	}
	shifted := v.Shift(int32(cur.Fraction))
	return money.New(shifted.IntPart(), currency).Display()
}

// SignedMoney is like DisplayMoney but always carries an explicit sign,
// and renders zero as "-".
func SignedMoney(v decimal.Decimal, currency string) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + DisplayMoney(v, currency)
	}
	return DisplayMoney(v, currency)
}
