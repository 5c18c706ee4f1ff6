package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultPopularItemsLimit is used when the caller asks for a non-positive limit.
const DefaultPopularItemsLimit = 5

// ItemSales is how much of one menu item was sold.
type ItemSales struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// CategoryRevenue is the line revenue earned by one menu category.
type CategoryRevenue struct {
	Category menu.Category
	Revenue  decimal.Decimal
}

// SalesReport summarises the orders created on one day.
//
// Revenue is the sum of order totals (after discount, with tax).
// Item and category figures use line subtotals, before discount and tax,
// since discounts apply to whole orders.
type SalesReport struct {
	Date              time.Time
	OrderCount        int
	ItemCount         int
	Subtotal          decimal.Decimal
	Discounts         decimal.Decimal
	Tax               decimal.Decimal
	Revenue           decimal.Decimal
	PopularItems      []ItemSales
	RevenueByCategory []CategoryRevenue
}

// AverageOrderValue is Revenue / OrderCount, zero for an empty day.
func (r SalesReport) AverageOrderValue() decimal.Decimal {
	if r.OrderCount == 0 {
		return decimal.Zero
	}
	return r.Revenue.Div(decimal.NewFromInt(int64(r.OrderCount)))
}

// String renders the report for logs and plain-text output.
func (r SalesReport) String() string {
	var sb strings.Builder

	sb.WriteString("Daily sales report for " + r.Date.Format(time.DateOnly) + "\n")
	if r.OrderCount == 0 {
		sb.WriteString("No orders.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Orders: %d\n", r.OrderCount)
	fmt.Fprintf(&sb, "Items sold: %d\n", r.ItemCount)
	sb.WriteString("Subtotal: " + kernel.FormatCurrency(r.Subtotal) + "\n")
	sb.WriteString("Discounts: -" + kernel.FormatCurrency(r.Discounts) + "\n")
	sb.WriteString("Tax: " + kernel.FormatCurrency(r.Tax) + "\n")
	sb.WriteString("Revenue: " + kernel.FormatCurrency(r.Revenue) + "\n")
	sb.WriteString("Average order: " + kernel.FormatCurrency(r.AverageOrderValue()) + "\n")

	sb.WriteString("Most popular items:\n")
	for i, item := range r.PopularItems {
		fmt.Fprintf(&sb, "  %d. %s - %d sold\n", i+1, item.Name, item.Quantity)
	}

	sb.WriteString("Revenue by category:\n")
	for _, c := range r.RevenueByCategory {
		fmt.Fprintf(&sb, "  %s: %s\n", c.Category, kernel.FormatCurrency(c.Revenue))
	}

	return sb.String()
}

// SalesReporter builds sales reports from already loaded orders.
//
// Example usage:
//
//	reporter := services.NewSalesReporter()
//	report, err := reporter.DailySales(day, ordersOfTheDay, 3)
//	fmt.Print(report)
type SalesReporter struct{}

// NewSalesReporter creates a new SalesReporter instance.
func NewSalesReporter() SalesReporter {
	return SalesReporter{}
}

// DailySales aggregates orders into a report for day.
//
// Parameters:
//   - day: the date the report is for; only its calendar date is kept
//   - orders: the orders to aggregate; every one must be valid
//   - limit: how many popular items to keep; non-positive means DefaultPopularItemsLimit
//
// Orders created on another day are rejected, so a caller that loaded the
// wrong range fails loudly instead of reporting wrong numbers.
func (s SalesReporter) DailySales(day time.Time, orders []*order.Order, limit int) (SalesReport, error) {
	start := startOfDay(day)
	end := start.AddDate(0, 0, 1)

	report := SalesReport{
		Date:      start,
		Subtotal:  decimal.Zero,
		Discounts: decimal.Zero,
		Tax:       decimal.Zero,
		Revenue:   decimal.Zero,
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return SalesReport{}, err
		}

		created := o.CreatedAt().In(day.Location())
		if created.Before(start) || !created.Before(end) {
			return SalesReport{}, errs.NewValueIsOutOfRangeError("order created at", created.Format(time.RFC3339),
				start.Format(time.RFC3339), end.Format(time.RFC3339))
		}

		report.OrderCount++
		report.Subtotal = report.Subtotal.Add(o.Subtotal())
		report.Discounts = report.Discounts.Add(o.DiscountAmount())
		report.Tax = report.Tax.Add(o.Tax())
		report.Revenue = report.Revenue.Add(o.Total())
		for _, line := range o.Items() {
			report.ItemCount += line.Quantity()
		}
	}

	report.PopularItems = s.MostPopularItems(orders, limit)
	report.RevenueByCategory = s.RevenueByCategory(orders)

	return report, nil
}

// MostPopularItems ranks menu items by quantity sold, highest first. Ties
// are broken by revenue, then by name. Customized products count towards
// their base item.
func (s SalesReporter) MostPopularItems(orders []*order.Order, limit int) []ItemSales {
	if limit <= 0 {
		limit = DefaultPopularItemsLimit
	}

	byName := make(map[string]*ItemSales)
	for _, o := range orders {
		for _, line := range o.Items() {
			name := line.Product().Name()
			sales, ok := byName[name]
			if !ok {
				sales = &ItemSales{Name: name, Revenue: decimal.Zero}
				byName[name] = sales
			}
			sales.Quantity += line.Quantity()
			sales.Revenue = sales.Revenue.Add(line.Subtotal())
		}
	}

	ranked := make([]ItemSales, 0, len(byName))
	for _, sales := range byName {
		ranked = append(ranked, *sales)
	}
	slices.SortFunc(ranked, func(a, b ItemSales) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RevenueByCategory sums line subtotals per menu category. Categories
// without sales are left out; the rest keep menu order.
func (s SalesReporter) RevenueByCategory(orders []*order.Order) []CategoryRevenue {
	totals := make(map[menu.Category]decimal.Decimal)
	for _, o := range orders {
		for _, line := range o.Items() {
			category := line.Product().Category()
			totals[category] = totals[category].Add(line.Subtotal())
		}
	}

	result := make([]CategoryRevenue, 0, len(totals))
	for _, category := range menu.Categories() {
		if revenue, ok := totals[category]; ok {
			result = append(result, CategoryRevenue{Category: category, Revenue: revenue})
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
