package dto

import "skillpilot_backend/internal/models"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// SendMessageResult returns the assistant reply plus a bounded suffix of
// the conversation (the last 20 messages).
type SendMessageResult struct {
	Reply  string
	ChatID string
	Recent []models.Message
}
