package middleware

import (
	"strings"

	"skillpilot_backend/internal/auth"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/models"
	"skillpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is the cookie carrying the refresh token; only
	// the refresh endpoint reads it.
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware verifies the access token and attaches the identity to
// the request. The cookie takes precedence over the Authorization header
// when both are present.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractAccessToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Access token required"))
			return
		}

		claims, err := auth.ParseAccessToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set. It must sit behind AuthMiddleware: a missing identity here
// means the route is miswired, which is an internal error rather than a
// client failure.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			logger.CtxError(c.Request.Context(), "authorization ran without authentication", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			logger.CtxError(c.Request.Context(), "role in context has unexpected type", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		if !roleSet[models.UserRole(roleStr)] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
