package storage

import (
	"fmt"

	"expediente-admin/config"
	"expediente-admin/internal/domain/repository"

	"github.com/spf13/afero"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// NewImageStorage builds the configured image storage driver.
func NewImageStorage(cfg config.StorageConfig) (repository.ImageStorage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(afero.NewOsFs(), cfg.LocalDir, cfg.PublicURL), nil
	case DriverS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("storage driver %q requires STORAGE_S3_BUCKET", cfg.Driver)
		}
		return NewS3Storage(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
