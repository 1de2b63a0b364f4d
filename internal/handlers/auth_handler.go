package handlers

import (
	"net/http"

	"skillpilot_backend/internal/config"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/middleware"
	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
	}
}

// setSessionCookies drops both token cookies. HttpOnly always; Secure only
// in production so local http frontends keep working.
func (h *AuthHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := h.cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, h.cfg.JWT.AccessTTLMinutes*60, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, h.cfg.JWT.RefreshTTLDays*24*3600, "/", "", secure, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	secure := h.cfg.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", secure, true)
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	result, err := h.authService.Signup(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)
	logger.CtxInfo(c.Request.Context(), "user signed up", "user_id", result.User.ID, "role", result.User.Role)

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	result, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)
	logger.CtxInfo(c.Request.Context(), "user logged in", "user_id", result.User.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// Refresh handles POST /api/auth/refresh. The refresh token is read from
// its cookie only; it never appears in a request body or header.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Refresh token required"))
		return
	}

	db := h.GetDB(c)
	result, err := h.authService.Refresh(db, refreshToken)
	if err != nil {
		h.clearSessionCookies(c)
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.authService.Logout(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearSessionCookies(c)
	logger.CtxInfo(c.Request.Context(), "user logged out", "user_id", userID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	user, err := h.authService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
