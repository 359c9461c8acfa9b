package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler_UploadImage(t *testing.T) {
	uc := new(mockMediaUsecase)
	uc.On("UploadImage", mock.Anything, mock.Anything).Return(&dto.ImageUploadResponse{
		Reference:   "products/abc.png",
		URL:         "http://localhost:8080/media/products/abc.png",
		ContentType: "image/png",
		Size:        4,
	}, nil)

	rec := httptest.NewRecorder()
	NewUploadHandler(uc, 1<<20).UploadImage(rec, multipartRequest(t, "image", []byte("data")))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, string(body.Data), `"reference":"products/abc.png"`)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	uc := new(mockMediaUsecase)

	rec := httptest.NewRecorder()
	NewUploadHandler(uc, 1<<20).UploadImage(rec, multipartRequest(t, "attachment", []byte("data")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything)
}

func TestUploadHandler_UsecaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrImageEmpty, http.StatusBadRequest},
		{usecase.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
		{usecase.ErrUnsupportedImageType, http.StatusUnsupportedMediaType},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(mockMediaUsecase)
			uc.On("UploadImage", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewUploadHandler(uc, 1<<20).UploadImage(rec, multipartRequest(t, "image", []byte("data")))

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
