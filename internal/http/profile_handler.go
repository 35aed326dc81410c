package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/repository"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewProfileHandler(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{logger: logger, profiles: profiles}
}

// CreateProfile maneja POST /profiles. El id viene del proveedor de
// identidad: el perfil se crea con el id del usuario autenticado.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Name   string `json:"name" binding:"required"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile := domain.Profile{
		ID:              userID,
		Name:            req.Name,
		Avatar:          req.Avatar,
		PreferredTopics: []string{},
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.profiles.Create(c.Request.Context(), profile); err != nil {
		h.logger.Error("create profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// GetMyProfile maneja GET /profiles/me.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}
	h.respondProfile(c, userID)
}

// GetProfile maneja GET /profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("id"))
}

func (h *ProfileHandler) respondProfile(c *gin.Context, id string) {
	profile, err := h.profiles.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err), zap.String("profile_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateMyProfile maneja PUT /profiles/me.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Name             string `json:"name" binding:"required"`
		DescriptionNote  string `json:"descripcion_personal"`
		ExternalAnalysis string `json:"analisis_externo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.profiles.UpdateBasics(c.Request.Context(), userID, req.Name, req.DescriptionNote, req.ExternalAnalysis); err != nil {
		h.logger.Error("update profile failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
