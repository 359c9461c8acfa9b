package repository

import (
	"context"
	"errors"
	"fmt"

	"expediente-admin/internal/domain/entity"
	domainRepo "expediente-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueColumns maps a unique product field to its lookup predicate.
// name and sku collide case-insensitively; slug is already lowercase.
var uniqueColumns = map[string]string{
	"name": "LOWER(name) = LOWER(?)",
	"slug": "slug = ?",
	"sku":  "LOWER(sku) = LOWER(?)",
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
	return domainRepo.NewStorageError("create product", err)
}

func (r *productRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&total).Error; err != nil {
		return nil, 0, domainRepo.NewStorageError("count products", err)
	}

	err := r.db.WithContext(ctx).
		Preload("Brand").
		Limit(limit).
		Offset(offset).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, 0, domainRepo.NewStorageError("list products", err)
	}

	return products, total, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Brand").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainRepo.NewStorageError("find product", err)
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
	return domainRepo.NewStorageError("update product", err)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{})
	if result.Error != nil {
		return 0, domainRepo.NewStorageError("delete product", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *productRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id IN ?", ids).Delete(&entity.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(ids)) {
			return domainRepo.ErrIncompleteDelete
		}
		return nil
	})
	if errors.Is(err, domainRepo.ErrIncompleteDelete) {
		return err
	}
	return domainRepo.NewStorageError("bulk delete products", err)
}

func (r *productRepository) Exists(ctx context.Context, field, value string, excludeID *uuid.UUID) (bool, error) {
	predicate, ok := uniqueColumns[field]
	if !ok {
		return false, fmt.Errorf("field %q is not a unique product column", field)
	}

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where(predicate, value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domainRepo.NewStorageError("check "+field+" uniqueness", err)
	}
	return count > 0, nil
}
