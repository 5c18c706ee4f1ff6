package menurepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves every editable column of an existing menu item.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "price", "description", "flag").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Remove deletes a menu item. Items still referenced by order lines are
// rejected with errs.ValueIsInvalidError.
func (r *GormMenuRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("menu item", fmt.Errorf("%s is referenced by orders", id))
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAll retrieves the whole menu ordered by category, then name.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
