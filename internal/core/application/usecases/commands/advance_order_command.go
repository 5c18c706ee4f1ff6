package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step through its lifecycle.
type AdvanceOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command for the given order.
func NewAdvanceOrderCommand(orderID kernel.UUID) (AdvanceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}
	return AdvanceOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
