package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderReaderFactory struct{ mock.Mock }

func (m *MockOrderReaderFactory) Create() queries.OrderReader {
	args := m.Called()
	return args.Get(0).(queries.OrderReader)
}

// newReaderFactory wires a factory that hands out repo through one reader.
func newReaderFactory(repo *MockOrderRepository) *MockOrderReaderFactory {
	reader := new(MockOrderReader)
	reader.On("OrderRepository").Return(repo)

	factory := new(MockOrderReaderFactory)
	factory.On("Create").Return(reader)
	return factory
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerReaderFactory struct{ mock.Mock }

func (m *MockCustomerReaderFactory) Create() queries.CustomerReader {
	args := m.Called()
	return args.Get(0).(queries.CustomerReader)
}

func newCustomerReaderFactory(repo *MockCustomerRepository) *MockCustomerReaderFactory {
	reader := new(MockCustomerReader)
	reader.On("CustomerRepository").Return(repo)

	factory := new(MockCustomerReaderFactory)
	factory.On("Create").Return(reader)
	return factory
}
