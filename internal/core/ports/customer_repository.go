package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Phone numbers are unique.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone finds the customer registered with phone.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)

	// GetAll returns every customer ordered by name.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
