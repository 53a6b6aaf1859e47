package gallery

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"atelier/models"
)

const photoFolder = "atelier/photos"

// UploadPhoto stores the image in Cloudinary and records its metadata.
func (s *DefaultPhotoService) UploadPhoto(ctx context.Context, file io.Reader, name string, size int64, category, title, description string) (*models.Photo, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: photoFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload photo %q: %w", name, err)
	}

	photo := models.Photo{
		ID:          uuid.New().String(),
		PublicID:    result.PublicID,
		URL:         result.SecureURL,
		Category:    category,
		Title:       title,
		Description: description,
		Size:        size,
		UploadedAt:  time.Now().UnixMilli(),
	}
	if err := s.Repo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("record photo metadata: %w", err)
	}
	return &photo, nil
}

func (s *DefaultPhotoService) GetAllPhotos(ctx context.Context) (*models.Gallery, error) {
	photos, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return &models.Gallery{Photos: photos, Total: len(photos)}, nil
}

func (s *DefaultPhotoService) GetPhotosByCategory(ctx context.Context, category string) (*models.Gallery, error) {
	photos, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list photos in %q: %w", category, err)
	}
	return &models.Gallery{Photos: photos, Total: len(photos), Category: category}, nil
}

// GetFeaturedPhotos returns up to limit photos from the featured
// category, topped up with the most recent photos overall when the
// featured set is too small.
func (s *DefaultPhotoService) GetFeaturedPhotos(ctx context.Context, limit int) (*models.Gallery, error) {
	featured, err := s.Repo.ListByCategory(ctx, models.CategoryFeatured)
	if err != nil {
		return nil, fmt.Errorf("list featured photos: %w", err)
	}
	if len(featured) >= limit {
		featured = featured[:limit]
		return &models.Gallery{Photos: featured, Total: len(featured), Category: models.CategoryFeatured}, nil
	}

	all, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return &models.Gallery{Photos: all, Total: len(all), Category: models.CategoryFeatured}, nil
}
