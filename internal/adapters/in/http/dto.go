package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by endpoints that create a resource.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// NewMenuItem is the body of POST /api/v1/menu. Flag is the category
// attribute (vegetarian, spicy, alcoholic, contains nuts).
type NewMenuItem struct {
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Flag        bool            `json:"flag"`
}

// MenuItemUpdate is the body of PUT /api/v1/menu/:id.
type MenuItemUpdate struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Flag        bool            `json:"flag"`
}

// MenuItem is one entry of GET /api/v1/menu.
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	FlagName    string          `json:"flagName"`
	Flag        bool            `json:"flag"`
}

// NewCustomer is the body of POST /api/v1/customers and PUT /api/v1/customers/:id.
type NewCustomer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Customer is one entry of GET /api/v1/customers.
type Customer struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
}

// OrderSummary is one entry of GET /api/v1/orders. Number is the short
// order number printed on receipts.
type OrderSummary struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customerName"`
	CreatedAt    time.Time       `json:"createdAt"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"itemCount"`
	Total        decimal.Decimal `json:"total"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	CustomerID uuid.UUID `json:"customerId"`
}

// Customization is an extra topping or side item requested for a line.
type Customization struct {
	Kind  string          `json:"kind"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// NewOrderItem is the body of POST /api/v1/orders/:id/items.
type NewOrderItem struct {
	MenuItemID     uuid.UUID       `json:"menuItemId"`
	Quantity       int             `json:"quantity"`
	Customizations []Customization `json:"customizations"`
}

// Discount is the body of PUT /api/v1/orders/:id/discount.
type Discount struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// OrderLine is one line of an order.
type OrderLine struct {
	ID             uuid.UUID       `json:"id"`
	MenuItemID     uuid.UUID       `json:"menuItemId"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Customizations []string        `json:"customizations"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Order is the body of GET /api/v1/orders/:id. Amounts are rounded to cents.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	CustomerID     uuid.UUID       `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	CreatedAt      time.Time       `json:"createdAt"`
	Status         string          `json:"status"`
	Items          []OrderLine     `json:"items"`
	Discount       string          `json:"discount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Receipt        string          `json:"receipt"`
}

// ItemSales is one entry of the most popular items.
type ItemSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// CategoryRevenue is the revenue of one menu category.
type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesReport is the body of GET /api/v1/reports/daily.
type SalesReport struct {
	Date              string            `json:"date"`
	OrderCount        int               `json:"orderCount"`
	ItemCount         int               `json:"itemCount"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	Discounts         decimal.Decimal   `json:"discounts"`
	Tax               decimal.Decimal   `json:"tax"`
	Revenue           decimal.Decimal   `json:"revenue"`
	AverageOrderValue decimal.Decimal   `json:"averageOrderValue"`
	PopularItems      []ItemSales       `json:"popularItems"`
	RevenueByCategory []CategoryRevenue `json:"revenueByCategory"`
}

func cents(d decimal.Decimal) decimal.Decimal {
	return kernel.RoundCurrency(d)
}

func toMenuItem(item queries.GetMenuQueryResponse) MenuItem {
	return MenuItem{
		ID:          item.ID.Bytes(),
		Category:    item.Category.String(),
		Name:        item.Name,
		Price:       cents(item.Price),
		Description: item.Description,
		FlagName:    item.Category.FlagName(),
		Flag:        item.Flag,
	}
}

func toCustomer(c queries.GetCustomersQueryResponse) Customer {
	return Customer{
		ID:      c.ID.Bytes(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

func toOrderSummary(o queries.GetOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:           o.ID.Bytes(),
		Number:       o.Number,
		CustomerName: o.CustomerName,
		CreatedAt:    o.CreatedAt,
		Status:       o.Status.String(),
		ItemCount:    o.ItemCount,
		Total:        cents(o.Total),
	}
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, OrderLine{
			ID:             line.ID.Bytes(),
			MenuItemID:     line.MenuItemID.Bytes(),
			Name:           line.Name,
			Category:       line.Category.String(),
			Description:    line.Description,
			Customizations: line.Customizations,
			Quantity:       line.Quantity,
			UnitPrice:      cents(line.UnitPrice),
			Subtotal:       cents(line.Subtotal),
		})
	}

	return Order{
		ID:             o.ID.Bytes(),
		CustomerID:     o.CustomerID.Bytes(),
		CustomerName:   o.CustomerName,
		CreatedAt:      o.CreatedAt,
		Status:         o.Status.String(),
		Items:          lines,
		Discount:       o.Discount,
		Subtotal:       cents(o.Subtotal),
		DiscountAmount: cents(o.DiscountAmount),
		Tax:            cents(o.Tax),
		Total:          cents(o.Total),
		Receipt:        o.Receipt,
	}
}

func toSalesReport(r services.SalesReport) SalesReport {
	popular := make([]ItemSales, 0, len(r.PopularItems))
	for _, item := range r.PopularItems {
		popular = append(popular, ItemSales{Name: item.Name, Quantity: item.Quantity, Revenue: cents(item.Revenue)})
	}

	byCategory := make([]CategoryRevenue, 0, len(r.RevenueByCategory))
	for _, c := range r.RevenueByCategory {
		byCategory = append(byCategory, CategoryRevenue{Category: c.Category.String(), Revenue: cents(c.Revenue)})
	}

	return SalesReport{
		Date:              r.Date.Format(time.DateOnly),
		OrderCount:        r.OrderCount,
		ItemCount:         r.ItemCount,
		Subtotal:          cents(r.Subtotal),
		Discounts:         cents(r.Discounts),
		Tax:               cents(r.Tax),
		Revenue:           cents(r.Revenue),
		AverageOrderValue: cents(r.AverageOrderValue()),
		PopularItems:      popular,
		RevenueByCategory: byCategory,
	}
}
