package cmd

import (
	"log/slog"
	"time"

	httpapi "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/notifier"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	location   *time.Location
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, location *time.Location, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if location == nil {
		location = time.UTC
	}
	return CompositionRoot{
		config:     config,
		location:   location,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaderFactory() queries.OrderReaderFactory {
	return FuncOrderReaderFactory(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerReaderFactory() queries.CustomerReaderFactory {
	return FuncCustomerReaderFactory(func() queries.CustomerReader {
		return c.uowFactory.Create()
	})
}

// Notifiers returns the observers attached to every order before it advances.
func (c *CompositionRoot) Notifiers() []order.Observer {
	return []order.Observer{
		notifier.NewConsoleNotifier(c.logger),
		notifier.NewEmailNotifier(c.logger, c.config.NotificationSender),
	}
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	return commands.NewRemoveMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.unitOfWorkFactory())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.unitOfWorkFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.logger, c.Notifiers()...)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByPhoneQueryHandler() queries.GetCustomerByPhoneQueryHandler {
	return queries.NewGetCustomerByPhoneQueryHandler(c.customerReaderFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateGetDailySalesReportQueryHandler() queries.GetDailySalesReportQueryHandler {
	return queries.NewGetDailySalesReportQueryHandler(c.orderReaderFactory())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpapi.Server {
	createMenuItem := c.CreateCreateMenuItemCommandHandler()
	updateMenuItem := c.CreateUpdateMenuItemCommandHandler()
	removeMenuItem := c.CreateRemoveMenuItemCommandHandler()
	createCustomer := c.CreateCreateCustomerCommandHandler()
	updateCustomer := c.CreateUpdateCustomerCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	addOrderItem := c.CreateAddOrderItemCommandHandler()
	removeOrderItem := c.CreateRemoveOrderItemCommandHandler()
	applyDiscount := c.CreateApplyDiscountCommandHandler()
	advanceOrder := c.CreateAdvanceOrderCommandHandler()

	return httpapi.NewServer(httpapi.Handlers{
		CreateMenuItem:      &createMenuItem,
		UpdateMenuItem:      &updateMenuItem,
		RemoveMenuItem:      &removeMenuItem,
		CreateCustomer:      &createCustomer,
		UpdateCustomer:      &updateCustomer,
		CreateOrder:         &createOrder,
		AddOrderItem:        &addOrderItem,
		RemoveOrderItem:     &removeOrderItem,
		ApplyDiscount:       &applyDiscount,
		AdvanceOrder:        &advanceOrder,
		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetCustomers:        c.CreateGetCustomersQueryHandler(),
		GetCustomerByPhone:  c.CreateGetCustomerByPhoneQueryHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetDailySalesReport: c.CreateGetDailySalesReportQueryHandler(),
	}, c.logger, c.location)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDailySalesReportQueryHandler(), jobs.DailySalesReportSettings{
		Schedule: c.config.ReportSchedule,
		Limit:    c.config.PopularItemsLimit,
		Location: c.location,
	}, c.logger)
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderReaderFactory func() queries.OrderReader

func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}

type FuncCustomerReaderFactory func() queries.CustomerReader

func (f FuncCustomerReaderFactory) Create() queries.CustomerReader {
	return f()
}
