package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand replaces the discount strategy of an order.
// DiscountNone clears any discount.
//
// Example:
//
//	cmd, err := NewApplyDiscountCommand(orderID, order.DiscountPercentage, kernel.MustMoney("10"))
type ApplyDiscountCommand struct {
	orderID  kernel.UUID
	discount order.DiscountStrategy

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand builds the strategy up front, so invalid
// percentages and amounts are rejected before any transaction starts.
func NewApplyDiscountCommand(orderID kernel.UUID, kind order.DiscountKind, value decimal.Decimal) (ApplyDiscountCommand, error) {
	discount, err := order.NewDiscount(kind, value)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return ApplyDiscountCommand{
		orderID:  orderID,
		discount: discount,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) OrderID() kernel.UUID             { return c.orderID }
func (c ApplyDiscountCommand) Discount() order.DiscountStrategy { return c.discount }
