package repositories

import (
	"errors"

	"skillpilot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrChatNotFound = errors.New("chat not found")

type ChatRepository interface {
	// FindByUserAndProject loads the unique chat for a (user, project)
	// pair with its messages in append order.
	FindByUserAndProject(db *gorm.DB, userID, projectID string) (*models.Chat, error)

	Create(db *gorm.DB, chat *models.Chat) error

	// AppendMessages adds messages to a chat. Existing messages are never
	// touched.
	AppendMessages(db *gorm.DB, chatID string, messages []models.Message) error
}

type chatRepository struct{}

func NewChatRepository() ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) FindByUserAndProject(db *gorm.DB, userID, projectID string) (*models.Chat, error) {
	var chat models.Chat
	err := db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, created_at ASC")
		}).
		First(&chat, "user_id = ? AND project_id = ?", userID, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) Create(db *gorm.DB, chat *models.Chat) error {
	return db.Create(chat).Error
}

func (r *chatRepository) AppendMessages(db *gorm.DB, chatID string, messages []models.Message) error {
	for i := range messages {
		messages[i].ChatID = chatID
	}
	return db.Create(&messages).Error
}
