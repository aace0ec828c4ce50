package orderarchive

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"verdant/internal/core/domain/model/order"
	"verdant/internal/pkg/errs"
)

// GormOrderArchive implements ports.OrderArchive using GORM.
type GormOrderArchive struct {
	db *gorm.DB
}

// NewGormOrderArchive creates a new GORM order archive.
func NewGormOrderArchive(db *gorm.DB) *GormOrderArchive {
	return &GormOrderArchive{db: db}
}

// Add saves a placed order and its lines to the database.
func (r *GormOrderArchive) Add(ctx context.Context, o order.CustomerOrder) error {
	if err := o.Status.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the current status of an already archived order.
func (r *GormOrderArchive) Update(ctx context.Context, o order.CustomerOrder) error {
	if err := o.Status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", o.ID).
		Update("status", o.Status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", o.ID)
	}
	return nil
}

// Get retrieves an archived order by id.
func (r *GormOrderArchive) Get(ctx context.Context, id string) (order.CustomerOrder, error) {
	if id == "" {
		return order.CustomerOrder{}, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.CustomerOrder{}, errs.NewObjectNotFoundError("order", id)
		}
		return order.CustomerOrder{}, err
	}

	return toDomain(dto)
}

// ArchivedIDs returns the ids of every archived order.
func (r *GormOrderArchive) ArchivedIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
