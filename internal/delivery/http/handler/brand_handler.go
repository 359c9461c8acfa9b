package handler

import (
	"net/http"

	"expediente-admin/internal/usecase"
	"expediente-admin/pkg/response"
)

type BrandHandler struct {
	brandUsecase usecase.BrandUsecase
}

func NewBrandHandler(brandUsecase usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{brandUsecase: brandUsecase}
}

// GetAll lists brands for the product form's brand select
// @Summary Get all brands
// @Tags Brands
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/brands [get]
func (h *BrandHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get brands")
		return
	}

	response.Success(w, http.StatusOK, "Brands retrieved successfully", brands)
}
