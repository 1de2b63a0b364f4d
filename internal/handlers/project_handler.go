package handlers

import (
	"net/http"

	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

// Generate handles POST /api/projects/generate.
func (h *ProjectHandler) Generate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	project, err := h.projectService.Generate(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "project generated",
		"project_id", project.ID,
		"task_count", len(project.Tasks),
	)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"project": project,
	})
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	projects, err := h.projectService.List(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

// GetActive handles GET /api/projects/active. Having no active project is a
// normal state, so the project field is simply null.
func (h *ProjectHandler) GetActive(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	project, err := h.projectService.GetActive(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// GetByID handles GET /api/projects/:id.
func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Project ID is required"))
		return
	}

	db := h.GetDB(c)
	project, err := h.projectService.GetByID(db, userID, projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// UpdateStatus handles PATCH /api/projects/:id/status.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	var req dto.UpdateProjectStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	project, err := h.projectService.UpdateStatus(db, userID, projectID, models.ProjectStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// GeneratePortfolio handles POST /api/projects/:id/portfolio.
func (h *ProjectHandler) GeneratePortfolio(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	db := h.GetDB(c)
	project, portfolio, err := h.projectService.GeneratePortfolio(c.Request.Context(), db, userID, projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "portfolio generated", "project_id", project.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"project":   project,
		"portfolio": portfolio,
	})
}

// GetPublicProjects handles GET /api/projects/public/:userId. No auth.
func (h *ProjectHandler) GetPublicProjects(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("User ID is required"))
		return
	}

	db := h.GetDB(c)
	projects, err := h.projectService.GetPublicProjects(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}
