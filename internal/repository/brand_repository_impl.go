package repository

import (
	"context"

	"expediente-admin/internal/domain/entity"
	domainRepo "expediente-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) domainRepo.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) FindAll(ctx context.Context) ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, domainRepo.NewStorageError("list brands", err)
	}
	return brands, nil
}

func (r *brandRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Brand{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, domainRepo.NewStorageError("find brand", err)
	}
	return count > 0, nil
}
