package usecase

import (
	"context"

	"expediente-admin/internal/converter"
	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type BrandUsecase interface {
	GetAll(ctx context.Context) ([]dto.BrandResponse, error)
}

type brandUsecase struct {
	log       *logrus.Logger
	brandRepo repository.BrandRepository
}

func NewBrandUsecase(log *logrus.Logger, brandRepo repository.BrandRepository) BrandUsecase {
	return &brandUsecase{
		log:       log,
		brandRepo: brandRepo,
	}
}

func (u *brandUsecase) GetAll(ctx context.Context) ([]dto.BrandResponse, error) {
	brands, err := u.brandRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all brands: %+v", err)
		return nil, err
	}

	return converter.BrandsToResponses(brands), nil
}
