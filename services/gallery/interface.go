// File: services/gallery/interface.go
package gallery

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"

	galleryRepo "atelier/database/repository/gallery"
	"atelier/models"
)

// PhotoService manages the portfolio gallery: uploads into object
// storage plus metadata listing by category.
type PhotoService interface {
	UploadPhoto(ctx context.Context, file io.Reader, name string, size int64, category, title, description string) (*models.Photo, error)
	GetAllPhotos(ctx context.Context) (*models.Gallery, error)
	GetPhotosByCategory(ctx context.Context, category string) (*models.Gallery, error)
	GetFeaturedPhotos(ctx context.Context, limit int) (*models.Gallery, error)
}

type DefaultPhotoService struct {
	cld  *cloudinary.Cloudinary
	Repo galleryRepo.PhotoRepository
}

func NewDefaultPhotoService(cld *cloudinary.Cloudinary, repo galleryRepo.PhotoRepository) *DefaultPhotoService {
	return &DefaultPhotoService{cld: cld, Repo: repo}
}
