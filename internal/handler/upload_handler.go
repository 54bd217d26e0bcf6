package handler

import (
	"net/http"

	"freeco/pkg/storage"

	"github.com/gin-gonic/gin"
)

const maxUploadFiles = 5

type UploadHandler struct {
	store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts multipart files under the "files" field and returns
// their served URLs.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "multipart form required"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no files provided"})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "too many files"})
		return
	}
	urls, err := h.store.SaveAll(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to store files"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "urls": urls})
}
