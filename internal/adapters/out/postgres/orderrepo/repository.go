package orderrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateMenuItemReference(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order columns and replaces its lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_name":  dto.CustomerName,
		"status":         dto.Status,
		"discount_kind":  dto.DiscountKind,
		"discount_value": dto.DiscountValue,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return translateMenuItemReference(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	dtos := []OrderDTO{dto}
	if err := r.withCurrentCustomerNames(ctx, dtos); err != nil {
		return nil, err
	}

	return toDomain(dtos[0], menuCache{})
}

// GetAll retrieves every order, oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.withLines(ctx))
}

// GetCreatedBetween retrieves the orders created in [from, to), oldest first.
func (r *GormOrderRepository) GetCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	return r.find(ctx, r.withLines(ctx).Where("created_at >= ? AND created_at < ?", from, to))
}

func (r *GormOrderRepository) find(ctx context.Context, query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	if err := r.withCurrentCustomerNames(ctx, dtos); err != nil {
		return nil, err
	}

	cache := menuCache{}
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, cache)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// withCurrentCustomerNames replaces the stored customer name of each order
// with the customer's current name. Orders whose customer row is gone keep
// the stored name.
func (r *GormOrderRepository) withCurrentCustomerNames(ctx context.Context, dtos []OrderDTO) error {
	if len(dtos) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.CustomerID)
	}

	var customers []customerrepo.CustomerDTO
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&customers).Error
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	for i := range dtos {
		if name, ok := names[dtos[i].CustomerID]; ok {
			dtos[i].CustomerName = name
		}
	}

	return nil
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Items.MenuItem").
		Preload("Items.Customizations", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

func translateMenuItemReference(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundError("menu item", "referenced by order line")
	}
	return err
}
