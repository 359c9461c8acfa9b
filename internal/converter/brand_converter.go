package converter

import (
	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/domain/entity"
)

func BrandToResponse(brand *entity.Brand) *dto.BrandResponse {
	if brand == nil {
		return nil
	}

	return &dto.BrandResponse{
		ID:   brand.ID,
		Name: brand.Name,
		Slug: brand.Slug,
	}
}

func BrandsToResponses(brands []entity.Brand) []dto.BrandResponse {
	responses := make([]dto.BrandResponse, len(brands))
	for i := range brands {
		responses[i] = *BrandToResponse(&brands[i])
	}
	return responses
}
