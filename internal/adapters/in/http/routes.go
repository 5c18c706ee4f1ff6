package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterHandlers mounts every route of the API on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/menu", s.GetMenu)
	v1.POST("/menu", s.CreateMenuItem)
	v1.PUT("/menu/:id", s.UpdateMenuItem)
	v1.DELETE("/menu/:id", s.RemoveMenuItem)

	v1.GET("/customers", s.GetCustomers)
	v1.POST("/customers", s.CreateCustomer)
	v1.PUT("/customers/:id", s.UpdateCustomer)

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/items", s.AddOrderItem)
	v1.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)
	v1.PUT("/orders/:id/discount", s.ApplyDiscount)
	v1.POST("/orders/:id/advance", s.AdvanceOrder)

	v1.GET("/reports/daily", s.GetDailySalesReport)
}

// NewEcho builds an echo instance with recovery and slog request logging.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.Error("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("Request handled", attrs...)
			return nil
		},
	}))

	return e
}
