package repository

import (
	"context"

	"expediente-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	// Exists reports whether a live product other than excludeID already
	// holds value in the given unique column.
	Exists(ctx context.Context, field, value string, excludeID *uuid.UUID) (bool, error)
}

// ProductCache is a read-through cache in front of ProductRepository.FindByID.
type ProductCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, ids ...uuid.UUID) error
}
