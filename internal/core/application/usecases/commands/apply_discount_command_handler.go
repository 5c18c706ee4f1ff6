package commands

import (
	"context"
)

// ApplyDiscountCommandHandler sets the discount strategy of an order.
type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyDiscountCommandHandler creates a handler for order discounts.
func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its discount and persists it.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) error {
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

	o.SetDiscountStrategy(cmd.Discount())

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
