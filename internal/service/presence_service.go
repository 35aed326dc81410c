package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/repository"
)

// PresenceService mantiene quien esta disponible en el lobby. La bandera
// is_available de profiles es la fuente durable; la clave con TTL en redis
// filtra a quienes cerraron la pestana sin despedirse. Sin redis el lobby
// funciona solo con la bandera.
type PresenceService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	store    presenceStore
	ttl      time.Duration
}

type presenceStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

const presenceKeyPrefix = "lobby:presence:"

func NewPresenceService(logger *zap.Logger, profiles repository.ProfileRepository, client *redis.Client, ttl time.Duration) *PresenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	s := &PresenceService{
		logger:   logger,
		profiles: profiles,
		ttl:      ttl,
	}
	if client != nil {
		s.store = client
	}
	return s
}

// SetAvailable cambia la disponibilidad del usuario en profiles y en redis.
func (s *PresenceService) SetAvailable(ctx context.Context, userID string, available bool) error {
	if err := s.profiles.SetAvailability(ctx, userID, available); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}

	if s.store == nil {
		return nil
	}
	key := presenceKeyPrefix + userID
	if available {
		if err := s.store.Set(ctx, key, "1", s.ttl).Err(); err != nil {
			s.logger.Warn("presence set failed", zap.Error(err), zap.String("user_id", userID))
		}
	} else {
		if err := s.store.Del(ctx, key).Err(); err != nil {
			s.logger.Warn("presence del failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
	return nil
}

// Heartbeat renueva el TTL de presencia. El cliente lo llama periodicamente
// mientras la pestana del lobby siga abierta.
func (s *PresenceService) Heartbeat(ctx context.Context, userID string) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Set(ctx, presenceKeyPrefix+userID, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("presence heartbeat: %w", err)
	}
	return nil
}

// ListLobby devuelve los perfiles disponibles, excluyendo al solicitante.
// Con redis activo se descartan los que dejaron expirar su presencia.
func (s *PresenceService) ListLobby(ctx context.Context, excludeID string) ([]domain.Profile, error) {
	profiles, err := s.profiles.ListAvailable(ctx, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list available profiles: %w", err)
	}
	if s.store == nil {
		return profiles, nil
	}

	alive := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		n, err := s.store.Exists(ctx, presenceKeyPrefix+p.ID).Result()
		if err != nil {
			// Ante un fallo de redis no se deja el lobby vacio.
			s.logger.Warn("presence check failed", zap.Error(err), zap.String("user_id", p.ID))
			return profiles, nil
		}
		if n > 0 {
			alive = append(alive, p)
		}
	}
	return alive, nil
}
