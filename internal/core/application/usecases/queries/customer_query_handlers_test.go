package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerByPhoneQueryHandler_Handle(t *testing.T) {
	t.Run("should return the customer registered with the phone", func(t *testing.T) {
		ana, err := customer.NewCustomer("Ana Diaz", "12 Main St", "555-0101")
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		repo.On("GetByPhone", mock.Anything, "555-0101").Return(ana, nil).Once()
		handler := queries.NewGetCustomerByPhoneQueryHandler(newCustomerReaderFactory(repo))

		query, err := queries.NewGetCustomerByPhoneQuery(" 555-0101")
		require.NoError(t, err)

		resp, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)

		assert.Equal(t, queries.GetCustomersQueryResponse{
			ID:      ana.ID(),
			Name:    "Ana Diaz",
			Address: "12 Main St",
			Phone:   "555-0101",
		}, resp)
		repo.AssertExpectations(t)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("GetByPhone", mock.Anything, "555-9999").
			Return(nil, errs.NewObjectNotFoundError("customer", "555-9999")).Once()
		handler := queries.NewGetCustomerByPhoneQueryHandler(newCustomerReaderFactory(repo))

		query, err := queries.NewGetCustomerByPhoneQuery("555-9999")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject a query not built by its constructor", func(t *testing.T) {
		factory := new(MockCustomerReaderFactory)
		handler := queries.NewGetCustomerByPhoneQueryHandler(factory)

		_, err := handler.Handle(t.Context(), queries.GetCustomerByPhoneQuery{})
		require.ErrorIs(t, err, queries.ErrGetCustomerByPhoneQueryIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
