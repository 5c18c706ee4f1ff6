package commands

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. A phone number can
// belong to one customer only.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the phone number is free and persists the customer.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.RestoreCustomer(cmd.CustomerID(), cmd.Name(), cmd.Address(), cmd.Phone())
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

	customerRepo := uow.CustomerRepository()
	if err = ensurePhoneIsFree(ctx, customerRepo, c); err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type customerFinder interface {
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}

func ensurePhoneIsFree(ctx context.Context, repo customerFinder, c *customer.Customer) error {
	existing, err := repo.GetByPhone(ctx, c.Phone())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID().IsEqual(c.ID()):
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%s is already registered", c.Phone()))
}
