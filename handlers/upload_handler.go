package handlers

import (
	"errors"
	"net/http"

	"harvestworld/services"

	"github.com/gin-gonic/gin"
)

// uploadEntities lists the directories uploads may land in.
var uploadEntities = map[string]bool{
	"plants":   true,
	"articles": true,
	"avatars":  true,
}

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	entity := c.Param("entity")
	if !uploadEntities[entity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown upload target"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	path, err := h.uploadService.SaveImage(entity, file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) || errors.Is(err, services.ErrInvalidFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}
