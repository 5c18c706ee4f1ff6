package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces a customer's contact details.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand validates the new contact details.
func NewUpdateCustomerCommand(customerID kernel.UUID, name, address, phone string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
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
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCustomerCommand) Name() string            { return c.name }
func (c UpdateCustomerCommand) Address() string         { return c.address }
func (c UpdateCustomerCommand) Phone() string           { return c.phone }
