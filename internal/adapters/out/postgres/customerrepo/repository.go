package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translatePhoneConflict(err, c.Phone())
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Update saves an existing customer.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "address", "phone").
		Updates(&dto)
	if result.Error != nil {
		return translatePhoneConflict(result.Error, c.Phone())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", c.ID().String())
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByPhone retrieves the customer registered with phone.
func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return r.first(ctx, "phone = ?", phone, phone)
}

// GetAll retrieves every customer ordered by name.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name, phone").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *GormCustomerRepository) first(ctx context.Context, cond string, arg any, key string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

func translatePhoneConflict(err error, phone string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%s is already registered", phone))
	}
	return err
}
