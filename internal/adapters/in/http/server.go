// Package http exposes the restaurant use cases as a JSON API over echo.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	location *time.Location
	newID    func() kernel.UUID
}

// NewServer creates a server. location is the time zone report dates are
// interpreted in.
func NewServer(handlers Handlers, logger *slog.Logger, location *time.Location) *Server {
	if location == nil {
		location = time.UTC
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
		location: location,
		newID:    kernel.NewUUID,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu[?category=].
func (s *Server) GetMenu(ctx echo.Context) error {
	category := menu.UnknownCategory
	if raw := ctx.QueryParam("category"); raw != "" {
		parsed, err := menu.ParseCategory(raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		category = parsed
	}

	query, err := queries.NewGetMenuQuery(category)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItem(item))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := menu.ParseCategory(body.Category)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := s.newID()
	cmd, err := commands.NewCreateMenuItemCommand(id, category, body.Name, body.Price, body.Description, body.Flag)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body MenuItemUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, body.Name, body.Price, body.Description, body.Flag)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/menu/:id.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveMenuItemCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomers handles GET /api/v1/customers[?phone=]. With a phone it
// responds with the one matching customer, or 404.
func (s *Server) GetCustomers(ctx echo.Context) error {
	if ctx.QueryParams().Has("phone") {
		return s.getCustomerByPhone(ctx, ctx.QueryParam("phone"))
	}

	customers, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Customer, 0, len(customers))
	for _, c := range customers {
		response = append(response, toCustomer(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getCustomerByPhone(ctx echo.Context, phone string) error {
	query, err := queries.NewGetCustomerByPhoneQuery(phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.handlers.GetCustomerByPhone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, []Customer{toCustomer(c)})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := s.newID()
	cmd, err := commands.NewCreateCustomerCommand(id, body.Name, body.Address, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewCustomer
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, body.Name, body.Address, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders[?status=], oldest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = parsed
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSummary(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return badRequest(ctx, "customerId is required")
	}

	id := s.newID()
	cmd, err := commands.NewCreateOrderCommand(id, customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// AddOrderItem handles POST /api/v1/orders/:id/items and responds with the
// updated order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromBytes(body.MenuItemID[:])
	if err != nil {
		return badRequest(ctx, "menuItemId is required")
	}

	customizations := make([]menu.Customization, 0, len(body.Customizations))
	for _, c := range body.Customizations {
		kind, kindErr := menu.ParseCustomizationKind(c.Kind)
		if kindErr != nil {
			return s.fail(ctx, kindErr)
		}
		customization, customizationErr := menu.NewCustomization(kind, c.Label, c.Price)
		if customizationErr != nil {
			return s.fail(ctx, customizationErr)
		}
		customizations = append(customizations, customization)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, menuItemID, body.Quantity, customizations...)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	lineID, err := pathID(ctx, "itemId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, lineID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ApplyDiscount handles PUT /api/v1/orders/:id/discount.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body Discount
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := order.ParseDiscountKind(body.Kind)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewApplyDiscountCommand(orderID, kind, body.Value)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ApplyDiscount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance. Advancing a
// delivered order succeeds and leaves it delivered.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetDailySalesReport handles GET /api/v1/reports/daily[?date=YYYY-MM-DD&limit=N].
// The date defaults to today in the server's time zone.
func (s *Server) GetDailySalesReport(ctx echo.Context) error {
	day := time.Now().In(s.location)
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, s.location)
		if err != nil {
			return badRequest(ctx, "date must be formatted as YYYY-MM-DD")
		}
		day = parsed
	}

	var limit *int
	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limit)
	if err != nil || (limit != nil && *limit < 0) {
		return badRequest(ctx, "limit must be a non-negative integer")
	}

	query, err := queries.NewGetDailySalesReportQuery(day, valueOrZero(limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.handlers.GetDailySalesReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSalesReport(report))
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(code, toOrder(o))
}

func valueOrZero(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
