// Package menurepo maps menu items to the menu_items table.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the row of a menu item. Flag stores the category specific
// attribute (vegetarian, spicy, alcoholic, contains nuts).
type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Category    int             `gorm:"type:smallint;not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Flag        bool            `gorm:"not null;default:false"`
}

// TableName overrides GORM's default "menu_item_dtos".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Category:    int(item.Category()),
		Price:       item.Price(),
		Description: item.Description(),
		Flag:        item.Flag(),
	}
}

// ToDomain rebuilds the menu item. Other repositories use it to resolve
// rows they preload.
func ToDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, menu.Category(dto.Category), dto.Name, dto.Price, dto.Description, dto.Flag)
}
