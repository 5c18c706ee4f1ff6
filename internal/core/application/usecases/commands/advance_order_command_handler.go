package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"restaurant/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler moves orders through Received, Preparing,
// Ready and Delivered, notifying the configured observers on every step.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, logger, consoleNotifier, emailNotifier)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	observers  []order.Observer
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler that attaches observers,
// in the given order, to every order it advances.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
	observers ...order.Observer,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		observers:  slices.Clone(observers),
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle advances the order and persists the new status. Observers are
// notified only after the transaction commits.
//
// Advancing a delivered order changes nothing and is not an error; it is
// logged and no transaction is committed. Observer failures are logged as
// well; the status change still stands.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	if o.Status().IsTerminal() {
		h.logger.InfoContext(ctx, "Order is already delivered", "order_id", o.ID().String())
		return nil
	}

	box := newOutbox(h.observers)
	if _, err = o.AddObserver(box); err != nil {
		return err
	}

	if _, err = o.NextState(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = box.flush(); err != nil {
		h.logger.WarnContext(ctx, "Order observers failed", "order_id", o.ID().String(), "error", err)
	}

	h.logger.InfoContext(ctx, "Order advanced", "order_id", o.ID().String(), "status", o.Status().String())
	return nil
}

// outbox records status changes and forwards them to the real observers
// once flushed.
type outbox struct {
	observers []order.Observer
	pending   []*order.Order
}

func newOutbox(observers []order.Observer) *outbox {
	return &outbox{observers: observers}
}

func (b *outbox) OrderChanged(o *order.Order) error {
	b.pending = append(b.pending, o)
	return nil
}

// flush notifies every observer of every recorded change, in registration
// order, and joins their failures.
func (b *outbox) flush() error {
	var errList []error
	for _, o := range b.pending {
		for i, obs := range b.observers {
			if err := obs.OrderChanged(o); err != nil {
				errList = append(errList, fmt.Errorf("observer %d: %w", i+1, err))
			}
		}
	}
	b.pending = nil
	return errors.Join(errList...)
}
