package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/service"
)

// AnalysisHandler mantiene dependencias para los endpoints de analisis con IA.
type AnalysisHandler struct {
	logger        *zap.Logger
	analysis      *service.AnalysisService
	superProfiles *service.SuperProfileService
}

func NewAnalysisHandler(logger *zap.Logger, analysis *service.AnalysisService, superProfiles *service.SuperProfileService) *AnalysisHandler {
	return &AnalysisHandler{
		logger:        logger,
		analysis:      analysis,
		superProfiles: superProfiles,
	}
}

// ChatAnalysis maneja POST /analysis/chat: analiza el texto del usuario y
// sugiere intereses. Si apply es true, la sugerencia se agrega a la seleccion
// actual y el analisis queda guardado en el arbol.
func (h *AnalysisHandler) ChatAnalysis(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Text  string `json:"text" binding:"required"`
		Apply bool   `json:"apply"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.analysis.AnalyzeInterestChat(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.Error("interest chat analysis failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyze text"})
		return
	}

	if req.Apply {
		selected, avoided := h.superProfiles.Selections(c.Request.Context(), userID)
		selected = mergeIDs(selected, result.Suggested)
		if op := h.superProfiles.ApplySelections(c.Request.Context(), userID, selected, avoided, result.Analysis); !op.Success {
			h.logger.Error("apply suggested interests failed", zap.Error(op.Err), zap.String("user_id", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not apply suggestions"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// ProfileAnalysis maneja POST /analysis/profile: genera y guarda el analisis
// externo del perfil del usuario.
func (h *AnalysisHandler) ProfileAnalysis(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	analysis, err := h.analysis.GenerateProfileAnalysis(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("profile analysis failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate analysis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func mergeIDs(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base)+len(extra))
	for _, id := range base {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range extra {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
