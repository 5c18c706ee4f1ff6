package commands

import (
	"context"
	"errors"
)

// UpdateCustomerCommandHandler edits customer contact details. Orders keep
// the customer name they were placed under.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the changes and persists them.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	c.SetAddress(cmd.Address())
	if err = errors.Join(
		c.SetName(cmd.Name()),
		c.SetPhone(cmd.Phone()),
	); err != nil {
		return err
	}

	if err = ensurePhoneIsFree(ctx, customerRepo, c); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
