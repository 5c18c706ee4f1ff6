package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand takes an item off the menu.
type RemoveMenuItemCommand struct {
	itemID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command for the given item.
func NewRemoveMenuItemCommand(itemID kernel.UUID) (RemoveMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemoveMenuItemCommand{}, err
	}
	return RemoveMenuItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ItemID returns the menu item to remove.
func (c RemoveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
