package handlers

import (
	"net/http"

	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

// SendMessage handles POST /api/chat/:projectId.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("projectId")

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	result, err := h.chatService.SendMessage(c.Request.Context(), db, userID, projectID, req.Message)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reply":    result.Reply,
		"chatId":   result.ChatID,
		"messages": result.Recent,
	})
}

// GetMessages handles GET /api/chat/:projectId.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("projectId")

	db := h.GetDB(c)
	messages, err := h.chatService.GetMessages(db, userID, projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
	})
}
