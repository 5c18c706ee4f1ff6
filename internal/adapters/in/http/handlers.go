package http

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
)

// The server depends on use cases through these single-method contracts.
type (
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) error
	}
	UpdateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error
	}
	RemoveMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveMenuItemCommand) error
	}
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AddOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) error
	}
	RemoveOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error
	}
	ApplyDiscountHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyDiscountCommand) error
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) error
	}

	GetMenuHandler interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.GetMenuQueryResponse, error)
	}
	GetCustomersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomersQuery) ([]queries.GetCustomersQueryResponse, error)
	}
	GetCustomerByPhoneHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerByPhoneQuery) (queries.GetCustomersQueryResponse, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetDailySalesReportHandler interface {
		Handle(ctx context.Context, query queries.GetDailySalesReportQuery) (services.SalesReport, error)
	}
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	CreateMenuItem  CreateMenuItemHandler
	UpdateMenuItem  UpdateMenuItemHandler
	RemoveMenuItem  RemoveMenuItemHandler
	CreateCustomer  CreateCustomerHandler
	UpdateCustomer  UpdateCustomerHandler
	CreateOrder     CreateOrderHandler
	AddOrderItem    AddOrderItemHandler
	RemoveOrderItem RemoveOrderItemHandler
	ApplyDiscount   ApplyDiscountHandler
	AdvanceOrder    AdvanceOrderHandler

	GetMenu             GetMenuHandler
	GetCustomers        GetCustomersHandler
	GetCustomerByPhone  GetCustomerByPhoneHandler
	GetOrders           GetOrdersHandler
	GetOrder            GetOrderHandler
	GetDailySalesReport GetDailySalesReportHandler
}
