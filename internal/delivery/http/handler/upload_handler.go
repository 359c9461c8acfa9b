package handler

import (
	"errors"
	"net/http"

	"expediente-admin/internal/usecase"
	"expediente-admin/pkg/response"
)

const imageFormField = "image"

type UploadHandler struct {
	mediaUsecase usecase.MediaUsecase
	maxSize      int64
}

func NewUploadHandler(mediaUsecase usecase.MediaUsecase, maxSize int64) *UploadHandler {
	return &UploadHandler{
		mediaUsecase: mediaUsecase,
		maxSize:      maxSize,
	}
}

// UploadImage stores a product image and returns its reference
// @Summary Upload a product image
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Failure 415 {object} response.Response
// @Router /admin/uploads/images [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// leave room for the multipart envelope around the file
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1<<20)

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "Image is too large", nil)
			return
		}
		response.BadRequest(w, "Image file is required")
		return
	}
	defer file.Close()

	uploaded, err := h.mediaUsecase.UploadImage(r.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrImageEmpty):
			response.BadRequest(w, "Image file is empty")
		case errors.Is(err, usecase.ErrImageTooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, "Image is too large", nil)
		case errors.Is(err, usecase.ErrUnsupportedImageType):
			response.Error(w, http.StatusUnsupportedMediaType, "Only JPEG, PNG, GIF and WebP images are accepted", nil)
		default:
			response.InternalServerError(w, "Failed to upload image")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Image uploaded successfully", uploaded)
}
