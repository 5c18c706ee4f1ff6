package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the menu straight from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns menu items ordered by category, then name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("menu_items").
		Select("id, name, category, price, description, flag").
		Order("category, name")
	if query.Category() != menu.UnknownCategory {
		stmt = stmt.Where("category = ?", int(query.Category()))
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuQueryResponse, 0)
	for rows.Next() {
		var (
			item     GetMenuQueryResponse
			id       uuid.UUID
			category int
			price    decimal.Decimal
		)

		if err = rows.Scan(&id, &item.Name, &category, &price, &item.Description, &item.Flag); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.Category = menu.Category(category)
		item.Price = price
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
