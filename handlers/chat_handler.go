package handlers

import (
	"net/http"
	"strconv"

	"chatbot-backend/models"
	"chatbot-backend/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles a chat message
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSystemPrompt overwrites the shared system prompt
// POST /api/system-prompt
func (h *ChatHandler) UpdateSystemPrompt(c *gin.Context) {
	var req models.SystemPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	h.chatService.SetSystemPrompt(req.SystemPrompt)

	c.JSON(http.StatusOK, gin.H{
		"message": "System prompt updated successfully",
	})
}

// GetSystemPrompt returns the current system prompt
// GET /api/system-prompt
func (h *ChatHandler) GetSystemPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, models.SystemPromptResponse{
		SystemPrompt: h.chatService.SystemPrompt(),
	})
}

// GetHistory returns recent chat exchanges
// GET /api/history?limit=20
func (h *ChatHandler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	conversations, err := h.chatService.History(limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Conversations: conversations,
		Count:         len(conversations),
	})
}

// HealthCheck is a simple health check endpoint
// GET /api/health
func (h *ChatHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "chatbot-backend",
		"version": "1.0.0",
	})
}
