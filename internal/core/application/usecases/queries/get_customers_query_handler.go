package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler reads customers straight from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listings.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns all customers sorted by name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone
		FROM customers
		ORDER BY name, phone
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var c GetCustomersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &c.Name, &c.Address, &c.Phone); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		c.ID = customerID
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
