// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuUoW manages transactions for menu-only operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for commands that only change an order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans every repository. Used by commands that read a customer or
	// menu item while changing an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, err := uow.MenuRepository().Get(ctx, itemID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... change the order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuRepoFactory
		CustomerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
