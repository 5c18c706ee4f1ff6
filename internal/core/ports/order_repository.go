package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their lines, customizations and discount.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order, replacing its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier. Line products are
	// resolved against the current menu.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetCreatedBetween returns the orders created in [from, to), oldest first.
	GetCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)
}
