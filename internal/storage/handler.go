package storage

import (
	"net/http"

	"pixi/internal/logger"
	"pixi/internal/middleware"
	"pixi/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler exposes the image upload passthrough.
type UploadHandler struct {
	store ObjectStore
}

func NewUploadHandler(store ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/upload", h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "No image file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Could not read image file")
		return
	}
	defer file.Close()

	folder := utils.SanitizeString(c.PostForm("folder"))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.store.Upload(c.Request.Context(), folder, contentType, file)
	if err != nil {
		requestID := middleware.GetRequestID(c)
		logger.Error("Image upload failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Image upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}
