package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/repository"
)

// MatchService calcula la compatibilidad entre dos asistentes a partir de
// sus selecciones de intereses.
type MatchService struct {
	logger        *zap.Logger
	interests     repository.InterestRepository
	conversations repository.ConversationRepository
}

func NewMatchService(
	logger *zap.Logger,
	interests repository.InterestRepository,
	conversations repository.ConversationRepository,
) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		logger:        logger,
		interests:     interests,
		conversations: conversations,
	}
}

// ComputeMatch aplica Jaccard sobre las dos listas, ignorando los ids del
// conjunto avoid. Es simetrica: intercambiar a y b no cambia el resultado.
// Con union vacia el porcentaje es 0, nunca una division por cero.
func ComputeMatch(a, b []string, avoid map[string]struct{}) domain.MatchResult {
	setA := make(map[string]struct{}, len(a))
	for _, id := range a {
		if _, skip := avoid[id]; skip {
			continue
		}
		setA[id] = struct{}{}
	}

	matchCount := 0
	union := len(setA)
	seenB := make(map[string]struct{}, len(b))
	for _, id := range b {
		if _, skip := avoid[id]; skip {
			continue
		}
		if _, dup := seenB[id]; dup {
			continue
		}
		seenB[id] = struct{}{}
		if _, shared := setA[id]; shared {
			matchCount++
		} else {
			union++
		}
	}

	if union == 0 {
		return domain.MatchResult{Percentage: 0, MatchCount: 0}
	}

	percentage := int(math.Round(float64(matchCount) / float64(union) * 100))
	return domain.MatchResult{Percentage: percentage, MatchCount: matchCount}
}

// CalculateForUsers carga las selecciones de ambos usuarios, calcula el match
// y persiste el porcentaje en la conversacion mas reciente del par. La
// persistencia es un efecto secundario: si falla se registra y el resultado
// se devuelve igualmente. Con el bot no se persiste nada.
func (s *MatchService) CalculateForUsers(ctx context.Context, userA, userB string) (domain.MatchResult, error) {
	selectedA, err := s.selectedInterestIDs(ctx, userA)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("load interests for %s: %w", userA, err)
	}
	selectedB, err := s.selectedInterestIDs(ctx, userB)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("load interests for %s: %w", userB, err)
	}

	avoidIDs, err := s.interests.AvoidInterestIDs(ctx)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("load avoid catalog: %w", err)
	}
	avoid := make(map[string]struct{}, len(avoidIDs))
	for _, id := range avoidIDs {
		avoid[id] = struct{}{}
	}

	result := ComputeMatch(selectedA, selectedB, avoid)

	if userA == domain.BotID || userB == domain.BotID {
		return result, nil
	}

	s.persistMatch(ctx, userA, userB, result.Percentage)
	return result, nil
}

func (s *MatchService) selectedInterestIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.interests.ListUserInterests(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.IsAvoided {
			continue
		}
		ids = append(ids, row.InterestID)
	}
	return ids, nil
}

func (s *MatchService) persistMatch(ctx context.Context, userA, userB string, percentage int) {
	conv, err := s.conversations.GetLatestBetween(ctx, userA, userB)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("match lookup conversation failed", zap.Error(err), zap.String("user_a", userA), zap.String("user_b", userB))
		}
		return
	}
	if err := s.conversations.UpdateMatchPercentage(ctx, conv.ID, percentage); err != nil {
		s.logger.Warn("match persist failed", zap.Error(err), zap.String("conversation_id", conv.ID))
	}
}
