package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/service"
)

// ConversationHandler mantiene dependencias para endpoints de conversaciones.
type ConversationHandler struct {
	logger        *zap.Logger
	conversations *service.ConversationService
	topics        *service.TopicService
}

func NewConversationHandler(logger *zap.Logger, conversations *service.ConversationService, topics *service.TopicService) *ConversationHandler {
	return &ConversationHandler{
		logger:        logger,
		conversations: conversations,
		topics:        topics,
	}
}

// StartConversation maneja POST /conversations.
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start conversation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	conv, err := h.conversations.Start(c.Request.Context(), userID, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrSameParticipants) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot start a conversation with yourself"})
			return
		}
		h.logger.Error("start conversation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start conversation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"conversation": conv})
}

// GetConversation maneja GET /conversations/:id.
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	conv, err := h.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		h.logger.Error("get conversation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv})
}

// SetFavorite maneja PUT /conversations/:id/favorite.
func (h *ConversationHandler) SetFavorite(c *gin.Context) {
	h.setFlag(c, h.conversations.SetFavorite)
}

// SetFollowUp maneja PUT /conversations/:id/follow-up.
func (h *ConversationHandler) SetFollowUp(c *gin.Context) {
	h.setFlag(c, h.conversations.SetFollowUp)
}

func (h *ConversationHandler) setFlag(c *gin.Context, set func(context.Context, string, bool) error) {
	var req struct {
		Value *bool `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid flag request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := set(c.Request.Context(), c.Param("id"), *req.Value); err != nil {
		h.logger.Error("set conversation flag failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// EndConversation maneja POST /conversations/:id/end.
func (h *ConversationHandler) EndConversation(c *gin.Context) {
	if err := h.conversations.End(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("end conversation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not end conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}

// GenerateTopic maneja POST /conversations/:id/topics.
func (h *ConversationHandler) GenerateTopic(c *gin.Context) {
	topic, err := h.topics.GenerateTopic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTopicRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many topic requests"})
			return
		}
		h.logger.Error("generate topic failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic})
}

// GenerateTopicsWithOptions maneja POST /conversations/:id/topics/options.
func (h *ConversationHandler) GenerateTopicsWithOptions(c *gin.Context) {
	topics, err := h.topics.GenerateTopicsWithOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTopicRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many topic requests"})
			return
		}
		h.logger.Error("generate topics with options failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate topics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// ListTopics maneja GET /conversations/:id/topics.
func (h *ConversationHandler) ListTopics(c *gin.Context) {
	topics, err := h.conversations.ListTopics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list topics failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list topics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// PutNote maneja PUT /conversations/:id/note.
func (h *ConversationHandler) PutNote(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid note request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	note, err := h.conversations.SaveNote(c.Request.Context(), c.Param("id"), userID, req.Notes)
	if err != nil {
		h.logger.Error("save note failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": note})
}

// GetNote maneja GET /conversations/:id/note.
func (h *ConversationHandler) GetNote(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	note, err := h.conversations.GetNote(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.logger.Error("get note failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": note})
}
