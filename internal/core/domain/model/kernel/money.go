package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places amounts are rounded to on display.
const CurrencyPlaces = 2

// AmountPlaces is the most decimal places a stored amount may carry.
const AmountPlaces = 4

// MaxAmount is the largest amount that can be stored.
var MaxAmount = decimal.New(1, 8).Sub(decimal.New(1, -AmountPlaces))

// Money parses a decimal amount such as "15.99".
func Money(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return d, nil
}

// MustMoney is Money for literals known to be valid. It panics otherwise.
func MustMoney(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RoundCurrency rounds half away from zero to CurrencyPlaces.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// FormatCurrency renders an amount as "$12.34".
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(CurrencyPlaces)
}

// ValidateAmount accepts amounts in [0, MaxAmount] with at most AmountPlaces
// decimal places. Negative or over-precise amounts yield a
// ValueIsInvalidError naming param, larger ones a ValueIsOutOfRangeError.
func ValidateAmount(param string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", d.String()))
	}
	if !d.Equal(d.Truncate(AmountPlaces)) {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s has more than %d decimal places", d.String(), AmountPlaces))
	}
	if d.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError(param, d.String(), 0, MaxAmount.String())
	}
	return nil
}
