package handler

import (
	"errors"
	"net/http"

	"pixi/internal/blog/model"
	"pixi/internal/blog/service"
	"pixi/internal/logger"
	"pixi/internal/middleware"
	appErrors "pixi/pkg/errors"
	"pixi/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service *service.BlogService
}

func NewHandler(service *service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) RegisterRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:id", h.Get)
		blogs.GET("/:id/comments", h.GetComments)
	}
}

func (h *BlogHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	{
		blogs.POST("", h.Create)
		blogs.PUT("/:id", h.Update)
		blogs.DELETE("/:id", h.Delete)
		blogs.PUT("/:id/like", h.ToggleLike)
		blogs.PUT("/:id/view", h.CountView)
		blogs.GET("/:id/viewers", h.GetViewers)
		blogs.POST("/:id/comments", h.AddComment)
		blogs.PUT("/:id/comments/:commentId", h.UpdateComment)
		blogs.DELETE("/:id/comments/:commentId", h.DeleteComment)
	}
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request model.CreateBlogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Title = utils.SanitizeString(request.Title)
	request.Content = utils.SanitizeText(request.Content)
	request.Category = utils.SanitizeString(request.Category)

	blog, err := h.service.Create(c.Request.Context(), userID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Blog created successfully!", blog)
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.service.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blogs retrieved successfully", blogs)
}

func (h *BlogHandler) Get(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	blog, err := h.service.Get(c.Request.Context(), blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blog retrieved successfully", blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.service.Update(c.Request.Context(), userID, blogID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blog updated successfully!", blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, blogID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Blog deleted successfully!", nil)
}

func (h *BlogHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), userID, blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BlogHandler) CountView(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.service.CountView(c.Request.Context(), userID, blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"views": views})
}

func (h *BlogHandler) GetViewers(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewers, err := h.service.GetViewers(c.Request.Context(), blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Viewers retrieved successfully", viewers)
}

func (h *BlogHandler) GetComments(c *gin.Context) {
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), blogID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"comments": comments,
		"count":    len(comments),
	})
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request model.CommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Text = utils.SanitizeText(request.Text)

	comments, err := h.service.AddComment(c.Request.Context(), userID, blogID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Comment added!", comments)
}

func (h *BlogHandler) UpdateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var request model.CommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Text = utils.SanitizeText(request.Text)

	comment, err := h.service.UpdateComment(c.Request.Context(), userID, blogID, commentID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated!", comment)
}

func (h *BlogHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blogID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, blogID, commentID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted!", nil)
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
	case errors.Is(err, appErrors.ErrBlogNotFound),
		errors.Is(err, appErrors.ErrCommentNotFound),
		errors.Is(err, appErrors.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrNotAuthorized):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
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
