package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// AddOrderItemCommandHandler puts a menu item on an order. The product on
// the line is the catalog item wrapped in the requested customizations.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and the menu item, customizes the item and appends
// a new line.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, err := uow.MenuRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	var product menu.Product = item
	for _, c := range cmd.Customizations() {
		if product, err = menu.Customize(product, c); err != nil {
			return err
		}
	}

	if _, err = o.AddItem(product, cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
