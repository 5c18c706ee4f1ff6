package queries

import (
	"restaurant/internal/core/ports"
)

// Queries that need domain calculations or lookups read aggregates through
// the repositories instead of raw SQL. They never begin a transaction.
type (
	// OrderReader provides the order repository outside a transaction.
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderReaderFactory creates a reader per query.
	OrderReaderFactory interface {
		Create() OrderReader
	}

	// CustomerReader provides the customer repository outside a transaction.
	CustomerReader interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CustomerReaderFactory creates a reader per query.
	CustomerReaderFactory interface {
		Create() CustomerReader
	}
)
