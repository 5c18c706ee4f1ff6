package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/services"
)

// GetDailySalesReportQueryHandler loads the orders of a day and aggregates
// them with services.SalesReporter.
type GetDailySalesReportQueryHandler struct {
	readerFactory OrderReaderFactory
	reporter      services.SalesReporter
}

// NewGetDailySalesReportQueryHandler creates a handler for daily reports.
func NewGetDailySalesReportQueryHandler(readerFactory OrderReaderFactory) GetDailySalesReportQueryHandler {
	return GetDailySalesReportQueryHandler{
		readerFactory: readerFactory,
		reporter:      services.NewSalesReporter(),
	}
}

// Handle returns the report for the requested day. A day without orders
// yields an empty report, not an error.
func (h GetDailySalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetDailySalesReportQuery,
) (services.SalesReport, error) {
	if err := query.Validate(); err != nil {
		return services.SalesReport{}, err
	}

	day := query.Day()
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	orders, err := h.readerFactory.Create().OrderRepository().GetCreatedBetween(ctx, from, to)
	if err != nil {
		return services.SalesReport{}, err
	}

	return h.reporter.DailySales(day, orders, query.Limit())
}
