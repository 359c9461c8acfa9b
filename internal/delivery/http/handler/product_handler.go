package handler

import (
	"errors"
	"net/http"
	"strconv"

	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/domain/repository"
	"expediente-admin/internal/infrastructure/metrics"
	"expediente-admin/internal/service"
	"expediente-admin/internal/usecase"
	"expediente-admin/pkg/response"
	"expediente-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// Create handles product creation
// @Summary Create a new product
// @Description Validate the submitted fields, derive the slug and store the product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProductRequest true "Product fields"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 413 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		writeProductError(w, err, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// GetAll handles getting all products
// @Summary Get all products
// @Description Get all products with pagination, newest first
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /admin/products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := h.productUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Products retrieved successfully", products, meta)
}

// GetByID handles getting a product by ID
// @Summary Get product by ID
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeProductError(w, err, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update handles product update
// @Summary Update a product
// @Description Update a product by its ID. The slug never changes.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.ProductRequest true "Product fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	var req dto.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeProductError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// Delete handles product deletion
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		writeProductError(w, err, "Failed to delete product")
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}

// BulkDelete handles deleting several products at once
// @Summary Delete several products
// @Description Deletes every listed product or none of them
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteProductRequest true "Product IDs"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/products/bulk-delete [post]
func (h *ProductHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	deleted, err := h.productUsecase.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		writeProductError(w, err, "Failed to delete products")
		return
	}

	response.Success(w, http.StatusOK, "Products deleted successfully", dto.BulkDeleteProductResponse{Deleted: deleted})
}

func writeProductError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *service.ValidationError
	var storageErr *repository.StorageError

	switch {
	case errors.As(err, &validationErr):
		for _, fe := range validationErr.Errors {
			metrics.ObserveFieldViolation(fe.Field, string(fe.Kind))
		}
		response.ValidationError(w, validationErr.ByField())
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	case errors.As(err, &storageErr) && storageErr.IsConflict():
		response.Conflict(w, "Product conflicts with an existing record")
	default:
		response.InternalServerError(w, fallback)
	}
}
