package handlers

import (
	"net/http"

	"skillpilot_backend/internal/services"
	"skillpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

// GetPublicPortfolio handles GET /api/portfolio/:username. Public route.
func (h *PortfolioHandler) GetPublicPortfolio(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username is required"))
		return
	}

	db := h.GetDB(c)
	portfolio, err := h.portfolioService.GetPublicPortfolio(db, username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"portfolio": portfolio,
	})
}
