package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Orders start empty, in Received status, without a discount.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory since the customer is read in the same transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the customer and creates the order for them.
// Returns errs.ObjectNotFoundError when the customer does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), c, h.now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
