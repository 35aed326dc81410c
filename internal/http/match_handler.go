package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/service"
)

// MatchHandler mantiene dependencias para el calculo de compatibilidad.
type MatchHandler struct {
	logger  *zap.Logger
	matches *service.MatchService
}

func NewMatchHandler(logger *zap.Logger, matches *service.MatchService) *MatchHandler {
	return &MatchHandler{logger: logger, matches: matches}
}

// ComputeMatch maneja POST /matches: calcula la compatibilidad entre el
// usuario autenticado y otro asistente.
func (h *MatchHandler) ComputeMatch(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid match request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.matches.CalculateForUsers(c.Request.Context(), userID, req.UserID)
	if err != nil {
		h.logger.Error("match calculation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute match"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": result})
}
