package routes

import (
	"net/http"

	"skillpilot_backend/internal/handlers"
	"skillpilot_backend/internal/middleware"
	"skillpilot_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint under /api. Public routes (portfolio,
// public project lists) sit outside the auth middleware; everything else is
// behind it, with role guards per group.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(), h.Auth.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
	}

	// Profile (students only)
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleStudent))
	{
		users.GET("/profile", h.User.GetProfile)
		users.PATCH("/profile", h.User.UpdateProfile)
	}

	// Projects (students only, except the public listing)
	projects := api.Group("/projects")
	projects.GET("/public/:userId", h.Project.GetPublicProjects)
	projects.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleStudent))
	{
		projects.POST("/generate", h.Project.Generate)
		projects.GET("", h.Project.List)
		projects.GET("/active", h.Project.GetActive)
		projects.GET("/:id", h.Project.GetByID)
		projects.PATCH("/:id/status", h.Project.UpdateStatus)
		projects.POST("/:id/portfolio", h.Project.GeneratePortfolio)
	}

	// Kanban board (students only)
	tasks := api.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleStudent))
	{
		tasks.PATCH("/:projectId/:taskId/status", h.Task.SetStatus)
		tasks.PUT("/:projectId/reorder", h.Task.Reorder)
	}

	// Mentor chat (students only)
	chat := api.Group("/chat")
	chat.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleStudent))
	{
		chat.POST("/:projectId", h.Chat.SendMessage)
		chat.GET("/:projectId", h.Chat.GetMessages)
	}

	// Recruiter tools (recruiters only)
	recruiter := api.Group("/recruiter")
	recruiter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter))
	{
		recruiter.GET("/students", h.Recruiter.BrowseStudents)
		recruiter.GET("/students/:id", h.Recruiter.GetStudentProfile)
		recruiter.GET("/students/:id/skill-score", h.Recruiter.GenerateSkillScore)
	}

	// Public portfolio pages
	api.GET("/portfolio/:username", h.Portfolio.GetPublicPortfolio)
}
