package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler adds new items to the menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the menu item and persists it in its own transaction.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.RestoreItem(cmd.ItemID(), cmd.Category(), cmd.Name(), cmd.Price(), cmd.Description(), cmd.Flag())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
