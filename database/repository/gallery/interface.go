package galleryRepo

import (
	"context"

	"atelier/models"
)

// PhotoRepository stores gallery photo metadata for quick listing; the
// image bytes themselves live in object storage.
type PhotoRepository interface {
	Create(ctx context.Context, photo models.Photo) error
	ListAll(ctx context.Context) ([]models.Photo, error)
	ListByCategory(ctx context.Context, category string) ([]models.Photo, error)
}
