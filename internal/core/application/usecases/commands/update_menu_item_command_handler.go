package commands

import (
	"context"
	"errors"
)

// UpdateMenuItemCommandHandler edits an existing menu item. Open orders
// pointing at the item see the new price the next time they are loaded.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, applies the changes and persists it.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.SetDescription(cmd.Description())
	item.SetFlag(cmd.Flag())
	if err = errors.Join(
		item.SetName(cmd.Name()),
		item.SetPrice(cmd.Price()),
	); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
