package converter

import (
	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		SKU:         product.SKU,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Type:        string(product.Type),
		IsVisible:   product.IsVisible,
		IsFeatured:  product.IsFeatured,
		PublishedAt: product.PublishedAt,
		Image:       product.Image,
		BrandID:     product.BrandID,
		Brand:       BrandToResponse(product.Brand),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities to slice of ProductResponse DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}
