package repository

import "context"

// ImageStorage persists uploaded images and hands back an opaque reference
// that is stored on the product record.
type ImageStorage interface {
	Put(ctx context.Context, reference, contentType string, data []byte) error
	URL(reference string) string
}
