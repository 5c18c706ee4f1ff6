package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its priced lines and receipt.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order read model. Amounts are exact;
// Receipt holds the rounded, human readable rendering.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CustomerName   string
	CreatedAt      time.Time
	Status         order.Status
	Items          []OrderLineResponse
	Discount       string
	DiscountKind   order.DiscountKind
	DiscountValue  decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Receipt        string
}

// OrderLineResponse is one priced order line.
type OrderLineResponse struct {
	ID             kernel.UUID
	MenuItemID     kernel.UUID
	Name           string
	Category       menu.Category
	Description    string
	Customizations []string
	Quantity       int
	UnitPrice      decimal.Decimal
	Subtotal       decimal.Decimal
}

func newGetOrderQueryResponse(o *order.Order) GetOrderQueryResponse {
	lines := make([]OrderLineResponse, 0, o.ItemCount())
	for _, line := range o.Items() {
		product := line.Product()
		labels := make([]string, 0)
		if c, ok := product.(*menu.Customized); ok {
			for _, layer := range c.Customizations() {
				labels = append(labels, layer.Label())
			}
		}

		lines = append(lines, OrderLineResponse{
			ID:             line.ID(),
			MenuItemID:     product.ID(),
			Name:           product.Name(),
			Category:       product.Category(),
			Description:    product.Description(),
			Customizations: labels,
			Quantity:       line.Quantity(),
			UnitPrice:      line.UnitPrice(),
			Subtotal:       line.Subtotal(),
		})
	}

	return GetOrderQueryResponse{
		ID:             o.ID(),
		CustomerID:     o.CustomerID(),
		CustomerName:   o.CustomerName(),
		CreatedAt:      o.CreatedAt(),
		Status:         o.Status(),
		Items:          lines,
		Discount:       o.Discount().String(),
		DiscountKind:   o.Discount().Kind(),
		DiscountValue:  o.Discount().Value(),
		Subtotal:       o.Subtotal(),
		DiscountAmount: o.DiscountAmount(),
		Tax:            o.Tax(),
		Total:          o.Total(),
		Receipt:        o.Receipt(),
	}
}
