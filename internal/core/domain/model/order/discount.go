package order

import (
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// DiscountKind identifies a discount strategy for storage and transport.
type DiscountKind int

const (
	DiscountNone DiscountKind = iota
	DiscountPercentage
	DiscountFixed
)

func (k DiscountKind) String() string {
	switch k {
	case DiscountNone:
		return "none"
	case DiscountPercentage:
		return "percentage"
	case DiscountFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseDiscountKind accepts "none", "percentage" and "fixed".
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DiscountNone, nil
	case "percentage", "percent":
		return DiscountPercentage, nil
	case "fixed":
		return DiscountFixed, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("discount kind", fmt.Errorf("%q is not a known discount", s))
}

// DiscountStrategy turns a subtotal into a discounted subtotal. Standard
// strategies never return more than they were given, nor less than zero.
type DiscountStrategy interface {
	Apply(subtotal decimal.Decimal) decimal.Decimal
	Kind() DiscountKind
	// Value is the percentage or amount the strategy was built with.
	Value() decimal.Decimal
	String() string
}

// NewDiscount builds the strategy of the given kind. value is ignored for DiscountNone.
func NewDiscount(kind DiscountKind, value decimal.Decimal) (DiscountStrategy, error) {
	switch kind {
	case DiscountNone:
		return NoDiscount{}, nil
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("discount kind", fmt.Errorf("%d is not a valid discount kind", kind))
}

// NoDiscount leaves the subtotal unchanged.
type NoDiscount struct{}

func (NoDiscount) Apply(subtotal decimal.Decimal) decimal.Decimal { return subtotal }
func (NoDiscount) Kind() DiscountKind                             { return DiscountNone }
func (NoDiscount) Value() decimal.Decimal                         { return decimal.Zero }
func (NoDiscount) String() string                                 { return "No discount" }

// PercentageDiscount takes a percentage in [0, 100] off the subtotal.
type PercentageDiscount struct {
	percentage decimal.Decimal
}

// NewPercentageDiscount rejects percentages outside [0, 100] and those with
// more than kernel.AmountPlaces decimal places.
func NewPercentageDiscount(percentage decimal.Decimal) (PercentageDiscount, error) {
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return PercentageDiscount{}, errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	if err := kernel.ValidateAmount("percentage", percentage); err != nil {
		return PercentageDiscount{}, err
	}
	return PercentageDiscount{percentage: percentage}, nil
}

// Apply returns subtotal × (1 − percentage/100).
func (d PercentageDiscount) Apply(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(one.Sub(d.percentage.Div(hundred)))
}

func (d PercentageDiscount) Kind() DiscountKind     { return DiscountPercentage }
func (d PercentageDiscount) Value() decimal.Decimal { return d.percentage }
func (d PercentageDiscount) String() string         { return d.percentage.String() + "% off" }

// FixedDiscount takes a fixed amount off the subtotal, never going below zero.
type FixedDiscount struct {
	amount decimal.Decimal
}

// NewFixedDiscount rejects amounts kernel.ValidateAmount refuses.
func NewFixedDiscount(amount decimal.Decimal) (FixedDiscount, error) {
	if err := kernel.ValidateAmount("discount amount", amount); err != nil {
		return FixedDiscount{}, err
	}
	return FixedDiscount{amount: amount}, nil
}

// Apply returns max(subtotal − amount, 0).
func (d FixedDiscount) Apply(subtotal decimal.Decimal) decimal.Decimal {
	return decimal.Max(subtotal.Sub(d.amount), decimal.Zero)
}

func (d FixedDiscount) Kind() DiscountKind     { return DiscountFixed }
func (d FixedDiscount) Value() decimal.Decimal { return d.amount }
func (d FixedDiscount) String() string         { return kernel.FormatCurrency(d.amount) + " off" }
