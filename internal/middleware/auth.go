package middleware

import (
	"context"
	"net/http"
	"strings"

	"pixi/internal/auth/model"
	"pixi/internal/config"
	"pixi/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "role"
)

// UserLoader resolves the authenticated account behind a token. Satisfied by
// the user repository.
type UserLoader interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	TouchLastActive(ctx context.Context, userID uuid.UUID) error
}

// AuthMiddleware validates the bearer token, loads the account, and records
// it on the request context.
func AuthMiddleware(cfg *config.Config, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Advisory only; a failed touch never blocks the request.
		if err := users.TouchLastActive(c.Request.Context(), user.ID); err != nil {
			zap.L().Warn("Failed to update last_active",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}
