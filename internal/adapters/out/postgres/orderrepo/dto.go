// Package orderrepo maps the order aggregate to the orders, order_items and
// order_item_customizations tables.
package orderrepo

import (
	"fmt"
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of an order. Lines are owned by the order and removed
// with it.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName  string          `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time       `gorm:"type:timestamptz;not null;index"`
	Status        int             `gorm:"type:smallint;not null"`
	DiscountKind  int             `gorm:"type:smallint;not null;default:0"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps insertion order. A menu item
// cannot be deleted while a line refers to it.
type OrderItemDTO struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	Position       int                   `gorm:"not null"`
	MenuItemID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	MenuItem       *menurepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
	Quantity       int                   `gorm:"not null"`
	Customizations []CustomizationDTO    `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_item_dtos".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// CustomizationDTO is one extra topping or side item of a line, in wrap order.
type CustomizationDTO struct {
	OrderItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey"`
	Kind        int             `gorm:"type:smallint;not null"`
	Label       string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,4);not null"`
}

// TableName overrides GORM's default "customization_dtos".
func (CustomizationDTO) TableName() string {
	return "order_item_customizations"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerID:    o.CustomerID().Bytes(),
		CustomerName:  o.CustomerName(),
		CreatedAt:     o.CreatedAt(),
		Status:        int(o.Status()),
		DiscountKind:  int(o.Discount().Kind()),
		DiscountValue: o.Discount().Value(),
		Items:         make([]OrderItemDTO, 0, len(items)),
	}

	for i, line := range items {
		dto.Items = append(dto.Items, lineFromDomain(dto.ID, i, line))
	}

	return dto
}

func lineFromDomain(orderID uuid.UUID, position int, line *order.LineItem) OrderItemDTO {
	dto := OrderItemDTO{
		ID:         line.ID().Bytes(),
		OrderID:    orderID,
		Position:   position,
		MenuItemID: line.Product().ID().Bytes(),
		Quantity:   line.Quantity(),
	}

	if customized, ok := line.Product().(*menu.Customized); ok {
		for i, c := range customized.Customizations() {
			dto.Customizations = append(dto.Customizations, CustomizationDTO{
				OrderItemID: dto.ID,
				Position:    i,
				Kind:        int(c.Kind()),
				Label:       c.Label(),
				Price:       c.Price(),
			})
		}
	}

	return dto
}

// menuCache makes lines that refer to the same menu item share one *menu.Item.
type menuCache map[uuid.UUID]*menu.Item

func (c menuCache) resolve(line OrderItemDTO) (*menu.Item, error) {
	if item, ok := c[line.MenuItemID]; ok {
		return item, nil
	}

	if line.MenuItem == nil {
		return nil, errs.NewObjectNotFoundError("menu item", line.MenuItemID.String())
	}

	item, err := menurepo.ToDomain(*line.MenuItem)
	if err != nil {
		return nil, err
	}

	c[line.MenuItemID] = item
	return item, nil
}

func toDomain(dto OrderDTO, cache menuCache) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	discount, err := order.NewDiscount(order.DiscountKind(dto.DiscountKind), dto.DiscountValue)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, lineDTO := range dto.Items {
		line, lineErr := lineToDomain(lineDTO, cache)
		if lineErr != nil {
			return nil, fmt.Errorf("order %s: %w", id, lineErr)
		}
		items = append(items, line)
	}

	return order.RestoreOrder(id, customerID, dto.CustomerName, dto.CreatedAt, order.Status(dto.Status), discount, items)
}

func lineToDomain(dto OrderItemDTO, cache menuCache) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	item, err := cache.resolve(dto)
	if err != nil {
		return nil, err
	}

	var product menu.Product = item
	for _, c := range dto.Customizations {
		customization, customizationErr := menu.NewCustomization(menu.CustomizationKind(c.Kind), c.Label, c.Price)
		if customizationErr != nil {
			return nil, customizationErr
		}

		if product, err = menu.Customize(product, customization); err != nil {
			return nil, err
		}
	}

	return order.RestoreLineItem(id, product, dto.Quantity)
}
