package queries

import (
	"context"
)

// GetOrderQueryHandler loads an order aggregate and projects it.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(o.Receipt)
type GetOrderQueryHandler struct {
	readerFactory OrderReaderFactory
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(readerFactory OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{readerFactory: readerFactory}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.readerFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return newGetOrderQueryResponse(o), nil
}
