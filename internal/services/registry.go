package services

import "skillpilot_backend/internal/ai"

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	ProjectService   ProjectService
	TaskService      TaskService
	ChatService      ChatService
	RecruiterService RecruiterService
	PortfolioService PortfolioService
	AIProvider       ai.Provider
}
