package services

import (
	"context"
	"time"

	"skillpilot_backend/internal/ai"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Window sizes for the mentor conversation: contextWindow messages go to
// the model, recentWindow messages come back to the caller.
const (
	chatContextWindow = 10
	chatRecentWindow  = 20
)

type ChatService interface {
	// SendMessage appends the user message, asks the mentor, and appends
	// the reply. Nothing is persisted when the AI call fails.
	SendMessage(ctx context.Context, db *gorm.DB, userID, projectID, message string) (*dto.SendMessageResult, error)

	// GetMessages returns the whole conversation; an absent chat is an
	// empty conversation, not an error.
	GetMessages(db *gorm.DB, userID, projectID string) ([]models.Message, error)
}

type chatService struct {
	chatRepo    repositories.ChatRepository
	projectRepo repositories.ProjectRepository
	aiProvider  ai.Provider
}

func NewChatService(chatRepo repositories.ChatRepository, projectRepo repositories.ProjectRepository, aiProvider ai.Provider) ChatService {
	return &chatService{
		chatRepo:    chatRepo,
		projectRepo: projectRepo,
		aiProvider:  aiProvider,
	}
}

func (s *chatService) SendMessage(ctx context.Context, db *gorm.DB, userID, projectID, message string) (*dto.SendMessageResult, error) {
	project, err := s.projectRepo.FindOwned(db, projectID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	chat, err := s.chatRepo.FindByUserAndProject(db, userID, projectID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrChatNotFound) {
			return nil, apperrors.InternalError(err)
		}
		chat = &models.Chat{UserID: userID, ProjectID: projectID}
		if err := s.chatRepo.Create(db, chat); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	userMessage := models.Message{
		Role:      models.MessageRoleUser,
		Content:   message,
		Timestamp: time.Now(),
	}

	// Context window: the stored history plus the new message, bounded
	history := append(chat.Messages, userMessage)
	start := 0
	if len(history) > chatContextWindow {
		start = len(history) - chatContextWindow
	}
	window := make([]ai.ChatMessage, 0, chatContextWindow)
	for _, m := range history[start:] {
		window = append(window, ai.ChatMessage{Role: string(m.Role), Content: m.Content})
	}

	reply, err := s.aiProvider.ChatWithMentor(ctx, window, ai.ProjectContext{
		Title:       project.Title,
		Description: project.Description,
		TechStack:   project.TechStack,
	})
	if err != nil {
		logger.CtxWithError(ctx, "mentor chat failed", err, "project_id", projectID)
		return nil, apperrors.ExternalServiceError(err)
	}

	// Both sides of the exchange are saved only after the AI call
	// succeeded, so a failure leaves no half-updated conversation.
	pair := []models.Message{
		userMessage,
		{Role: models.MessageRoleAssistant, Content: reply, Timestamp: time.Now()},
	}
	if err := s.chatRepo.AppendMessages(db, chat.ID, pair); err != nil {
		return nil, apperrors.InternalError(err)
	}

	all := append(chat.Messages, pair...)
	if len(all) > chatRecentWindow {
		all = all[len(all)-chatRecentWindow:]
	}

	return &dto.SendMessageResult{
		Reply:  reply,
		ChatID: chat.ID,
		Recent: all,
	}, nil
}

func (s *chatService) GetMessages(db *gorm.DB, userID, projectID string) ([]models.Message, error) {
	chat, err := s.chatRepo.FindByUserAndProject(db, userID, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrChatNotFound) {
			return []models.Message{}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return chat.Messages, nil
}
