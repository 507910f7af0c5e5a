package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
)

type ImageHandler struct{ svc services.ImageService }

func NewImageHandler(svc services.ImageService) *ImageHandler { return &ImageHandler{svc: svc} }

// UploadImages handles a multipart POST with up to ten "files" parts.
func (h *ImageHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File error"})
		return
	}
	urls, err := h.svc.Upload(form.File["files"])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
