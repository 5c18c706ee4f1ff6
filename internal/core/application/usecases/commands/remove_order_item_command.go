package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand removes one line from an order.
type RemoveOrderItemCommand struct {
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command for the given order line.
func NewRemoveOrderItemCommand(orderID, lineID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), lineID.Validate()); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	return RemoveOrderItemCommand{orderID: orderID, lineID: lineID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveOrderItemCommand) LineID() kernel.UUID  { return c.lineID }
