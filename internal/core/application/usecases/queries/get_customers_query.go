package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists every registered customer.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a parameterless customer listing query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is the customer read model.
type GetCustomersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
	Phone   string
}
