package commands

import (
	"errors"
	"fmt"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand adds a menu item, optionally customized, to an order.
// Customizations are applied in the given order.
//
// Example:
//
//	cheese, _ := menu.NewCustomization(menu.ExtraTopping, "Extra cheese", kernel.MustMoney("2.00"))
//	cmd, err := NewAddOrderItemCommand(orderID, chickenID, 2, cheese)
type AddOrderItemCommand struct {
	orderID        kernel.UUID
	menuItemID     kernel.UUID
	quantity       int
	customizations []menu.Customization

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand validates identifiers, quantity and customizations.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	customizations ...menu.Customization,
) (AddOrderItemCommand, error) {
	var quantityErr, customizationsErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if len(customizations) > menu.MaxCustomizations {
		customizationsErr = errs.NewValueIsOutOfRangeError("customizations", len(customizations), 0, menu.MaxCustomizations)
	}
	for _, c := range customizations {
		if err := c.Kind().Validate(); err != nil {
			customizationsErr = errors.Join(customizationsErr, err)
		}
	}

	if err := errors.Join(
		orderID.Validate(),
		menuItemID.Validate(),
		quantityErr,
		customizationsErr,
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID:        orderID,
		menuItemID:     menuItemID,
		quantity:       quantity,
		customizations: slices.Clone(customizations),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AddOrderItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c AddOrderItemCommand) Quantity() int           { return c.quantity }

// Customizations returns a copy of the requested layers.
func (c AddOrderItemCommand) Customizations() []menu.Customization {
	return slices.Clone(c.customizations)
}
