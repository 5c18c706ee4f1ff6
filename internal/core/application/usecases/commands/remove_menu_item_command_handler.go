package commands

import (
	"context"
)

// RemoveMenuItemCommandHandler deletes menu items.
type RemoveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removal.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the item. The repository refuses to remove items that
// existing orders still reference.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
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

	if err := uow.MenuRepository().Remove(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
