package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/service"
)

// LobbyHandler mantiene dependencias para la presencia en el lobby.
type LobbyHandler struct {
	logger   *zap.Logger
	presence *service.PresenceService
}

func NewLobbyHandler(logger *zap.Logger, presence *service.PresenceService) *LobbyHandler {
	return &LobbyHandler{logger: logger, presence: presence}
}

// ListLobby maneja GET /lobby.
func (h *LobbyHandler) ListLobby(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	profiles, err := h.presence.ListLobby(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list lobby failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list lobby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// SetAvailability maneja PUT /lobby/availability.
func (h *LobbyHandler) SetAvailability(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.presence.SetAvailable(c.Request.Context(), userID, *req.Available); err != nil {
		h.logger.Error("set availability failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Heartbeat maneja POST /lobby/heartbeat.
func (h *LobbyHandler) Heartbeat(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	if err := h.presence.Heartbeat(c.Request.Context(), userID); err != nil {
		h.logger.Warn("heartbeat failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refresh presence"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
