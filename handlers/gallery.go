package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atelier/models"
	"atelier/services/gallery"
	"atelier/utils"
)

// GalleryHandler exposes the portfolio photo endpoints.
type GalleryHandler struct {
	Svc gallery.PhotoService
}

func NewGalleryHandler(svc gallery.PhotoService) *GalleryHandler {
	return &GalleryHandler{Svc: svc}
}

// ListPhotos returns the whole gallery.
func (h *GalleryHandler) ListPhotos(c *gin.Context) {
	result, err := h.Svc.GetAllPhotos(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("gallery listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load photos")
		return
	}
	utils.JSONData(c, result)
}

// featuredLimit caps the front-page featured selection.
const featuredLimit = 10

// ListPhotosByCategory returns one category of the gallery. The featured
// category is special: it tops itself up with recent photos when thin.
func (h *GalleryHandler) ListPhotosByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == models.CategoryFeatured {
		result, err := h.Svc.GetFeaturedPhotos(c.Request.Context(), featuredLimit)
		if err != nil {
			utils.GetLogger().Error("featured listing failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to load photos")
			return
		}
		utils.JSONData(c, result)
		return
	}
	result, err := h.Svc.GetPhotosByCategory(c.Request.Context(), category)
	if err != nil {
		utils.GetLogger().Error("gallery listing failed", zap.String("category", category), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load photos")
		return
	}
	utils.JSONData(c, result)
}

// UploadPhoto accepts a multipart image upload with its metadata.
func (h *GalleryHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}
	category := c.PostForm("category")
	if category == "" {
		utils.JSONError(c, http.StatusBadRequest, "category is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	photo, err := h.Svc.UploadPhoto(c.Request.Context(), file, fileHeader.Filename, fileHeader.Size,
		category, c.PostForm("title"), c.PostForm("description"))
	if err != nil {
		utils.GetLogger().Error("photo upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo")
		return
	}
	utils.JSONData(c, photo)
}
