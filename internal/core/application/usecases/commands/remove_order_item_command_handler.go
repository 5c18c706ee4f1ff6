package commands

import (
	"context"

	"restaurant/internal/pkg/errs"
)

// RemoveOrderItemCommandHandler deletes order lines.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order lines.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line. A line that is not on the order is reported as
// errs.ObjectNotFoundError and nothing is written.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	if !o.RemoveItem(cmd.LineID()) {
		return errs.NewObjectNotFoundError("order item", cmd.LineID().String())
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
