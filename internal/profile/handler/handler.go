package handler

import (
	"errors"
	"net/http"

	"pixi/internal/logger"
	"pixi/internal/middleware"
	"pixi/internal/profile/service"
	"pixi/internal/storage"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service *service.ProfileService
	store   storage.ObjectStore
}

func NewHandler(service *service.ProfileService, store storage.ObjectStore) *ProfileHandler {
	return &ProfileHandler{service: service, store: store}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile/user/:id", h.GetPublicProfile)
}

func (h *ProfileHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("/me", h.GetMyProfile)
		profile.PUT("/update", h.UpdateProfile)
		profile.PUT("/follow/:id", h.Follow)
		profile.PUT("/unfollow/:id", h.Unfollow)
		profile.PUT("/save-blog/:blogId", h.ToggleSaveBlog)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile accepts multipart form data: name, bio, delete_pic, and an
// optional profile_pic file uploaded to the image store.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	request := service.UpdateProfileRequest{
		DeletePic: c.PostForm("delete_pic") == "true",
	}
	if name := utils.SanitizeString(c.PostForm("name")); name != "" {
		request.Name = &name
	}
	if bio := utils.SanitizeText(c.PostForm("bio")); bio != "" {
		request.Bio = &bio
	}

	if fileHeader, err := c.FormFile("profile_pic"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Could not read profile picture")
			return
		}
		defer file.Close()

		url, err := h.store.Upload(c.Request.Context(), "profiles", fileHeader.Header.Get("Content-Type"), file)
		if err != nil {
			logger.Error("Profile picture upload failed",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Error(err),
			)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to upload profile picture")
			return
		}
		request.PicURL = &url
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *ProfileHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	target, err := h.service.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User followed successfully!",
		"user":    target,
	})
}

func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	target, err := h.service.Unfollow(c.Request.Context(), userID, targetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User unfollowed successfully!",
		"user":    target,
	})
}

func (h *ProfileHandler) ToggleSaveBlog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "blogId")
	if !ok {
		return
	}

	result, err := h.service.ToggleSaveBlog(c.Request.Context(), userID, blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.service.GetPublicProfile(c.Request.Context(), targetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return uuid.Nil, false
	}

	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Invalid user identifier")
		return uuid.Nil, false
	}
	return userUUID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, appErrors.ErrBlogNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrAlreadyFollowing):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
