package repository

import (
	"context"

	"expediente-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type BrandRepository interface {
	FindAll(ctx context.Context) ([]entity.Brand, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
