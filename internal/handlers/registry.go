package handlers

import (
	"skillpilot_backend/internal/config"
	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/validator"
)

// AppHandlers groups every HTTP handler so route registration takes a
// single dependency.
type AppHandlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Project   *ProjectHandler
	Task      *TaskHandler
	Chat      *ChatHandler
	Recruiter *RecruiterHandler
	Portfolio *PortfolioHandler
}

func NewAppHandlers(cfg *config.Config, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:      NewAuthHandler(base, sc.AuthService, cfg),
		User:      NewUserHandler(base, sc.UserService),
		Project:   NewProjectHandler(base, sc.ProjectService),
		Task:      NewTaskHandler(base, sc.TaskService),
		Chat:      NewChatHandler(base, sc.ChatService),
		Recruiter: NewRecruiterHandler(base, sc.RecruiterService),
		Portfolio: NewPortfolioHandler(base, sc.PortfolioService),
	}
}
