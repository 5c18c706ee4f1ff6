// Package customerrepo maps customers to the customers table.
package customerrepo

import (
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of a customer. Phone numbers are unique.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(512);not null;default:''"`
	Phone   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName overrides GORM's default "customer_dtos".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Address, dto.Phone)
}
