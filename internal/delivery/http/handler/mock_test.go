package handler

import (
	"context"
	"io"

	"expediente-admin/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockProductUsecase struct {
	mock.Mock
}

func (m *mockProductUsecase) Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]dto.ProductResponse), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductUsecase) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

type mockBrandUsecase struct {
	mock.Mock
}

func (m *mockBrandUsecase) GetAll(ctx context.Context) ([]dto.BrandResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BrandResponse), args.Error(1)
}

type mockMediaUsecase struct {
	mock.Mock
}

func (m *mockMediaUsecase) UploadImage(ctx context.Context, body io.Reader) (*dto.ImageUploadResponse, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageUploadResponse), args.Error(1)
}
