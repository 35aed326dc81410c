package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"chelas-api/internal/repository"
	"chelas-api/internal/superprofile"
)

// SuperProfileService es la unica via de lectura y escritura del arbol de
// preferencias. El documento viaja completo: no hay actualizaciones parciales
// de hojas contra la base de datos.
type SuperProfileService struct {
	logger    *zap.Logger
	profiles  repository.ProfileRepository
	interests repository.InterestRepository
}

func NewSuperProfileService(
	logger *zap.Logger,
	profiles repository.ProfileRepository,
	interests repository.InterestRepository,
) *SuperProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuperProfileService{
		logger:    logger,
		profiles:  profiles,
		interests: interests,
	}
}

// Load devuelve el arbol guardado del usuario, o nil si la columna esta
// vacia o el documento no se pudo leer. Los fallos de lectura y de parseo se
// registran pero no interrumpen al llamador: un perfil ausente y uno ilegible
// reciben el mismo tratamiento.
func (s *SuperProfileService) Load(ctx context.Context, userID string) *superprofile.SuperProfile {
	raw, err := s.profiles.GetSuperProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("superprofile load failed", zap.Error(err), zap.String("user_id", userID))
		}
		return nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var p superprofile.SuperProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("superprofile parse failed", zap.Error(err), zap.String("user_id", userID))
		return nil
	}
	return &p
}

// Save serializa el arbol y reemplaza el documento completo del usuario.
func (s *SuperProfileService) Save(ctx context.Context, userID string, p *superprofile.SuperProfile) superprofile.OperationResult {
	if p == nil {
		return superprofile.OperationResult{Err: errors.New("nil super profile")}
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return superprofile.OperationResult{Err: fmt.Errorf("marshal super profile: %w", err)}
	}

	if err := s.profiles.UpdateSuperProfile(ctx, userID, raw); err != nil {
		s.logger.Warn("superprofile save failed", zap.Error(err), zap.String("user_id", userID))
		return superprofile.OperationResult{Err: fmt.Errorf("save super profile: %w", err)}
	}

	return superprofile.OperationResult{Success: true}
}

// ApplySelections reconstruye el arbol desde las listas planas de la UI y lo
// guarda: cargar o crear, reset completo, marcar seleccionados y evitados, y
// sobrescribir el texto de IA si viene uno nuevo. Tras un guardado exitoso
// sincroniza la tabla puente user_interests y el arreglo temas_preferidos,
// de modo que las tres representaciones salgan de esta unica escritura. Un
// fallo en la sincronizacion secundaria se registra sin revertir el arbol.
func (s *SuperProfileService) ApplySelections(ctx context.Context, userID string, selected, avoided []string, aiText string) superprofile.OperationResult {
	p := s.Load(ctx, userID)
	if p == nil {
		p = superprofile.NewEmpty()
	}

	superprofile.ResetAllInterests(p)
	for _, id := range selected {
		superprofile.SetInterestValue(p, id, true)
	}
	for _, id := range avoided {
		superprofile.SetInterestValue(p, id, true)
	}
	if strings.TrimSpace(aiText) != "" {
		p.Cultura.Tech.IA = aiText
	}

	result := s.Save(ctx, userID, p)
	if !result.Success {
		return result
	}

	if err := s.interests.ReplaceUserInterests(ctx, userID, selected, avoided); err != nil {
		s.logger.Warn("user interests sync failed", zap.Error(err), zap.String("user_id", userID))
	}
	if err := s.profiles.UpdatePreferredTopics(ctx, userID, selected); err != nil {
		s.logger.Warn("preferred topics sync failed", zap.Error(err), zap.String("user_id", userID))
	}

	return result
}

// Selections devuelve las listas planas derivadas del arbol guardado. Sin
// documento devuelve listas vacias: un perfil nuevo no tiene selecciones.
func (s *SuperProfileService) Selections(ctx context.Context, userID string) (selected, avoided []string) {
	p := s.Load(ctx, userID)
	if p == nil {
		return []string{}, []string{}
	}
	return superprofile.ExtractInterests(p)
}
