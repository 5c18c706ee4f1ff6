package http_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreateMenuItemHandler struct{ mock.Mock }

func (m *MockCreateMenuItemHandler) Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateMenuItemHandler struct{ mock.Mock }

func (m *MockUpdateMenuItemHandler) Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRemoveMenuItemHandler struct{ mock.Mock }

func (m *MockRemoveMenuItemHandler) Handle(ctx context.Context, cmd commands.RemoveMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateCustomerHandler struct{ mock.Mock }

func (m *MockCreateCustomerHandler) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateCustomerHandler struct{ mock.Mock }

func (m *MockUpdateCustomerHandler) Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddOrderItemHandler struct{ mock.Mock }

func (m *MockAddOrderItemHandler) Handle(ctx context.Context, cmd commands.AddOrderItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRemoveOrderItemHandler struct{ mock.Mock }

func (m *MockRemoveOrderItemHandler) Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockApplyDiscountHandler struct{ mock.Mock }

func (m *MockApplyDiscountHandler) Handle(ctx context.Context, cmd commands.ApplyDiscountCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAdvanceOrderHandler struct{ mock.Mock }

func (m *MockAdvanceOrderHandler) Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetMenuHandler struct{ mock.Mock }

func (m *MockGetMenuHandler) Handle(
	ctx context.Context,
	query queries.GetMenuQuery,
) ([]queries.GetMenuQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetMenuQueryResponse), args.Error(1)
}

type MockGetCustomersHandler struct{ mock.Mock }

func (m *MockGetCustomersHandler) Handle(
	ctx context.Context,
	query queries.GetCustomersQuery,
) ([]queries.GetCustomersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCustomersQueryResponse), args.Error(1)
}

type MockGetCustomerByPhoneHandler struct{ mock.Mock }

func (m *MockGetCustomerByPhoneHandler) Handle(
	ctx context.Context,
	query queries.GetCustomerByPhoneQuery,
) (queries.GetCustomersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCustomersQueryResponse), args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetOrdersQuery,
) ([]queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrdersQueryResponse), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockGetDailySalesReportHandler struct{ mock.Mock }

func (m *MockGetDailySalesReportHandler) Handle(
	ctx context.Context,
	query queries.GetDailySalesReportQuery,
) (services.SalesReport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.SalesReport), args.Error(1)
}
