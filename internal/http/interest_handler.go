package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/repository"
	"chelas-api/internal/service"
)

// InterestHandler mantiene dependencias para el catalogo y las selecciones.
type InterestHandler struct {
	logger        *zap.Logger
	interests     repository.InterestRepository
	superProfiles *service.SuperProfileService
}

func NewInterestHandler(logger *zap.Logger, interests repository.InterestRepository, superProfiles *service.SuperProfileService) *InterestHandler {
	return &InterestHandler{
		logger:        logger,
		interests:     interests,
		superProfiles: superProfiles,
	}
}

// ListInterests maneja GET /interests.
func (h *InterestHandler) ListInterests(c *gin.Context) {
	interests, err := h.interests.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list interests failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list interests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interests": interests})
}

// GetMySelections maneja GET /profiles/me/interests. Las listas salen del
// arbol guardado; los intereses custom solo viven en la tabla puente y se
// agregan aparte.
func (h *InterestHandler) GetMySelections(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	selected, avoided := h.superProfiles.Selections(c.Request.Context(), userID)

	rows, err := h.interests.ListUserInterests(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list user interests failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list selections"})
		return
	}
	custom := []string{}
	for _, row := range rows {
		if strings.HasPrefix(row.InterestID, "custom-") {
			custom = append(custom, row.InterestID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"selected": selected,
		"avoided":  avoided,
		"custom":   custom,
	})
}

// PutMySelections maneja PUT /profiles/me/interests: reemplaza la seleccion
// completa del usuario en sus tres representaciones.
func (h *InterestHandler) PutMySelections(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Selected []string `json:"selected"`
		Avoided  []string `json:"avoided"`
		AiText   string   `json:"ai_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid selections request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.superProfiles.ApplySelections(c.Request.Context(), userID, req.Selected, req.Avoided, req.AiText)
	if !result.Success {
		h.logger.Error("apply selections failed", zap.Error(result.Err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save selections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
