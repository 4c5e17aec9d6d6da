package handler

import (
	"errors"
	"net/http"

	"pixi/internal/admin/service"
	"pixi/internal/logger"
	"pixi/internal/middleware"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service *service.AdminService
}

func NewHandler(service *service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.ListUsers)
	router.GET("/blogs", h.ListBlogs)
	router.DELETE("/users", h.DeleteAllUsers)
	router.DELETE("/blogs", h.DeleteAllBlogs)
	router.DELETE("/users/:id", h.DeleteUser)
	router.DELETE("/blogs/:id", h.DeleteBlog)
	router.GET("/dashboard", h.GetDashboardStats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.service.ListBlogs(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AdminHandler) DeleteBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.DeleteBlog(c.Request.Context(), blogID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *AdminHandler) DeleteAllUsers(c *gin.Context) {
	deleted, err := h.service.DeleteAllUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "All users deleted except admin",
		"deleted_count": deleted,
	})
}

func (h *AdminHandler) DeleteAllBlogs(c *gin.Context) {
	if err := h.service.DeleteAllBlogs(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All blogs deleted!"})
}

func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, appErrors.ErrBlogNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
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
