package handlers

import (
	"net/http"
	"time"

	"github.com/agrisetu/registry-go/internal/storage"
	"github.com/agrisetu/registry-go/pkg/response"
	"github.com/gin-gonic/gin"
)

const presignExpiry = 15 * time.Minute

type DocumentHandler struct {
	store *storage.Store
}

func NewDocumentHandler(store *storage.Store) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// Upload stores a KYC supporting document and returns the object key.
// The key goes into the farmer record client-side; the backend does
// not parse the file.
func (h *DocumentHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "document storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.store.Upload(c.Request.Context(), file, fileHeader.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{FileKey: key})
}

// GetURL returns a short-lived presigned download link for an object.
func (h *DocumentHandler) GetURL(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "document storage not configured"})
		return
	}

	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "key is required"})
		return
	}

	url, err := h.store.PresignedURL(c.Request.Context(), key, presignExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete removes an object from storage.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "document storage not configured"})
		return
	}

	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "key is required"})
		return
	}

	if err := h.store.Remove(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "deleted"})
}
