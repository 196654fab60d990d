package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/types"
)

const previewUploadExpiry = 15 * time.Minute

var previewExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// PreviewStorage presigns uploads of recipe preview images.
type PreviewStorage interface {
	PresignUpload(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	PublicURL(objectKey string) string
}

// ImageHandler hands out upload URLs for recipe preview images
type ImageHandler struct {
	storage PreviewStorage
	tokens  middleware.TokenValidator
}

func NewImageHandler(storage PreviewStorage, tokens middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{storage: storage, tokens: tokens}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/preview-image", middleware.AuthMiddleware(h.tokens), h.CreatePreviewUpload)
}

// CreatePreviewUpload returns a presigned PUT URL and the link the client
// stores as the recipe's preview_image_link once the upload is done.
func (h *ImageHandler) CreatePreviewUpload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	var req types.PreviewImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := fmt.Sprintf("recipes/previews/%s.%s", uuid.NewString(), previewExtensions[req.ContentType])
	uploadURL, err := h.storage.PresignUpload(c.Request.Context(), key, req.ContentType, previewUploadExpiry)
	if err != nil {
		respondError(c, fmt.Errorf("presign preview upload: %w", err))
		return
	}

	c.JSON(http.StatusOK, types.PreviewImageResponse{
		UploadURL:        uploadURL,
		ObjectKey:        key,
		PreviewImageLink: h.storage.PublicURL(key),
	})
}
