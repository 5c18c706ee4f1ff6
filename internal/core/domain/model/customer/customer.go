// Package customer holds the Customer entity orders are placed for.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person the restaurant takes orders for. Phone numbers are
// used to look customers up, so one is required.
type Customer struct {
	id      kernel.UUID
	name    string
	address string
	phone   string

	isConstructed bool
}

// NewCustomer creates a customer with a fresh identifier.
func NewCustomer(name, address, phone string) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), name, address, phone)
}

// RestoreCustomer rebuilds a customer with a known identifier.
func RestoreCustomer(id kernel.UUID, name, address, phone string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.SetName(name),
		c.SetPhone(phone),
	); err != nil {
		return nil, err
	}
	c.SetAddress(address)

	return c, nil
}

// Validate ensures the customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Address() string { return c.address }
func (c *Customer) Phone() string   { return c.phone }

func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) SetAddress(address string) {
	c.address = strings.TrimSpace(address)
}

func (c *Customer) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

// String renders "Name (phone)".
func (c *Customer) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.phone)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
