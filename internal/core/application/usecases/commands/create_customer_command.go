package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer. Address is optional.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates the customer data.
func NewCreateCustomerCommand(customerID kernel.UUID, name, address, phone string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		customerID: customerID,
		name:       strings.TrimSpace(name),
		address:    strings.TrimSpace(address),
		phone:      strings.TrimSpace(phone),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerID.Validate(),
		requireText("name", cmd.name),
		requireText("phone", cmd.phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Name() string            { return c.name }
func (c CreateCustomerCommand) Address() string         { return c.address }
func (c CreateCustomerCommand) Phone() string           { return c.phone }

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
