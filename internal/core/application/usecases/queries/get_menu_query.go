// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for their callers rather than aggregates.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists menu items, optionally restricted to one category.
//
// Example:
//
//	query, _ := NewGetMenuQuery(menu.Dessert)
//	desserts, err := handler.Handle(ctx, query)
type GetMenuQuery struct {
	category menu.Category
	guard    guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for one category. menu.UnknownCategory
// selects the whole menu.
func NewGetMenuQuery(category menu.Category) (GetMenuQuery, error) {
	if category != menu.UnknownCategory {
		if err := category.Validate(); err != nil {
			return GetMenuQuery{}, err
		}
	}
	return GetMenuQuery{category: category, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the requested category, menu.UnknownCategory for all.
func (q GetMenuQuery) Category() menu.Category {
	return q.category
}

// GetMenuQueryResponse is one menu line. Flag is the category attribute
// named by Category.FlagName().
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Category    menu.Category
	Price       decimal.Decimal
	Description string
	Flag        bool
}
