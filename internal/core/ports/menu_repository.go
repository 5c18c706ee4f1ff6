// Package ports defines the repository and unit of work contracts of the
// restaurant domain. Adapters implement them; application handlers depend
// only on these interfaces.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.Item) error

	// Update persists changes to an existing menu item.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	Update(ctx context.Context, item *menu.Item) error

	// Remove deletes a menu item. Items referenced by orders cannot be removed.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAll returns the whole menu ordered by category, then name.
	GetAll(ctx context.Context) ([]*menu.Item, error)
}
