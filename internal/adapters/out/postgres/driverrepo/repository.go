package driverrepo

import (
	"context"
	"errors"

	"taxi/internal/core/domain/model/driver"
	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := FromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}
