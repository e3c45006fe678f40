package delivery

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snapnet-backend/pkg/storage"
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"video/mp4":  true,
}

// UploadHandler handles media upload HTTP requests
type UploadHandler struct {
	storage *storage.Client
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(storageClient *storage.Client) *UploadHandler {
	return &UploadHandler{
		storage: storageClient,
	}
}

// Upload stores a media file and returns its public URL
// POST /api/file
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("images/%d_%s", time.Now().UnixMilli(), fileHeader.Filename)
	url, err := h.storage.UploadFile(key, file, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
