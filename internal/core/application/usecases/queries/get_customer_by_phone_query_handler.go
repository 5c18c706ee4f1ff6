package queries

import (
	"context"
)

// GetCustomerByPhoneQueryHandler looks a customer up by phone number.
type GetCustomerByPhoneQueryHandler struct {
	readerFactory CustomerReaderFactory
}

// NewGetCustomerByPhoneQueryHandler creates a handler for phone lookups.
func NewGetCustomerByPhoneQueryHandler(readerFactory CustomerReaderFactory) GetCustomerByPhoneQueryHandler {
	return GetCustomerByPhoneQueryHandler{readerFactory: readerFactory}
}

// Handle returns errs.ObjectNotFoundError when no customer has the phone.
func (h GetCustomerByPhoneQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByPhoneQuery,
) (GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	c, err := h.readerFactory.Create().CustomerRepository().GetByPhone(ctx, query.Phone())
	if err != nil {
		return GetCustomersQueryResponse{}, err
	}

	return GetCustomersQueryResponse{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}, nil
}
