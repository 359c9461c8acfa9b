package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/delivery/http/middleware"
	"expediente-admin/internal/domain/entity"
	"expediente-admin/internal/domain/repository"
	"expediente-admin/internal/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrImageEmpty           = errors.New("image is empty")
	ErrImageTooLarge        = errors.New("image exceeds the maximum upload size")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

const imageReferencePrefix = "products/"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type MediaUsecase interface {
	UploadImage(ctx context.Context, body io.Reader) (*dto.ImageUploadResponse, error)
}

type mediaUsecase struct {
	log          *logrus.Logger
	storage      repository.ImageStorage
	auditService service.AuditService
	maxSize      int64
}

func NewMediaUsecase(log *logrus.Logger, storage repository.ImageStorage, auditService service.AuditService, maxSize int64) MediaUsecase {
	return &mediaUsecase{
		log:          log,
		storage:      storage,
		auditService: auditService,
		maxSize:      maxSize,
	}
}

// UploadImage stores an image and returns the reference to put on a product.
// The content type is sniffed from the bytes, not taken from the client.
func (u *mediaUsecase) UploadImage(ctx context.Context, body io.Reader) (*dto.ImageUploadResponse, error) {
	data, err := io.ReadAll(io.LimitReader(body, u.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrImageEmpty
	}
	if int64(len(data)) > u.maxSize {
		return nil, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !allowedImageTypes[mtype.String()] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImageType, mtype.String())
	}

	reference := imageReferencePrefix + uuid.NewString() + mtype.Extension()
	if err := u.storage.Put(ctx, reference, mtype.String(), data); err != nil {
		u.log.Warnf("Failed to store image: %+v", err)
		return nil, err
	}

	response := &dto.ImageUploadResponse{
		Reference:   reference,
		URL:         u.storage.URL(reference),
		ContentType: mtype.String(),
		Size:        int64(len(data)),
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionImageUpload, entity.AuditEntityImage, reference, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}
