package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// GetOrdersQueryHandler lists orders through the order repository so totals
// come from the domain.
type GetOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(readerFactory OrderReaderFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{readerFactory: readerFactory}
}

// Handle returns the matching orders, oldest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readerFactory.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		if query.Status() != order.Unknown && o.Status() != query.Status() {
			continue
		}
		result = append(result, newGetOrdersQueryResponse(o))
	}

	return result, nil
}
