package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, optionally only those in one status.
type GetOrdersQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. order.Unknown lists
// every order.
func NewGetOrdersQuery(status order.Status) (GetOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the requested status, order.Unknown for all.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// GetOrdersQueryResponse is one row of the order listing. Total is rounded
// to cents.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	CreatedAt    time.Time
	Status       order.Status
	ItemCount    int
	Total        decimal.Decimal
}

func newGetOrdersQueryResponse(o *order.Order) GetOrdersQueryResponse {
	return GetOrdersQueryResponse{
		ID:           o.ID(),
		Number:       o.ID().Short(),
		CustomerName: o.CustomerName(),
		CreatedAt:    o.CreatedAt(),
		Status:       o.Status(),
		ItemCount:    o.ItemCount(),
		Total:        kernel.RoundCurrency(o.Total()),
	}
}
