package models

import "time"

// Chat is the mentor conversation for one (user, project) pair.
// Messages are append-only.
type Chat struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_chat_user_project" json:"userId"`
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_chat_user_project" json:"projectId"`

	Messages []Message `gorm:"foreignKey:ChatID" json:"messages"`
}

type Message struct {
	BaseModel
	ChatID    string      `gorm:"type:uuid;not null;index" json:"-"`
	Role      MessageRole `gorm:"type:varchar(20);not null" json:"role"`
	Content   string      `gorm:"not null" json:"content"`
	Timestamp time.Time   `gorm:"not null" json:"timestamp"`
}
