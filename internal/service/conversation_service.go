package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/repository"
)

// ConversationService coordina el ciclo de vida de una conversacion del
// evento: inicio, marcas de favorito y seguimiento, cierre y notas.
type ConversationService struct {
	logger        *zap.Logger
	conversations repository.ConversationRepository
	now           func() time.Time
}

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSameParticipants     = errors.New("conversation requires two distinct participants")
)

func NewConversationService(logger *zap.Logger, conversations repository.ConversationRepository) *ConversationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversationService{
		logger:        logger,
		conversations: conversations,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Start crea una conversacion entre dos asistentes. El bot es un
// interlocutor valido: nadie se queda solo en el lobby.
func (s *ConversationService) Start(ctx context.Context, userA, userB string) (domain.Conversation, error) {
	if userA == userB {
		return domain.Conversation{}, ErrSameParticipants
	}

	conv := domain.Conversation{
		ID:        uuid.NewString(),
		UserA:     userA,
		UserB:     userB,
		StartedAt: s.now(),
	}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return domain.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *ConversationService) Get(ctx context.Context, id string) (domain.Conversation, error) {
	conv, err := s.conversations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Conversation{}, ErrConversationNotFound
		}
		return domain.Conversation{}, err
	}
	return conv, nil
}

func (s *ConversationService) SetFavorite(ctx context.Context, id string, favorite bool) error {
	return s.conversations.SetFavorite(ctx, id, favorite)
}

func (s *ConversationService) SetFollowUp(ctx context.Context, id string, followUp bool) error {
	return s.conversations.SetFollowUp(ctx, id, followUp)
}

// End cierra la conversacion con la hora actual. Cerrar una conversacion ya
// cerrada actualiza ended_at sin error: el cliente reintenta al perder red.
func (s *ConversationService) End(ctx context.Context, id string) error {
	return s.conversations.End(ctx, id, s.now())
}

func (s *ConversationService) ListTopics(ctx context.Context, conversationID string) ([]domain.ConversationTopic, error) {
	return s.conversations.ListTopics(ctx, conversationID)
}

// SaveNote guarda o reemplaza la nota del usuario sobre la conversacion.
func (s *ConversationService) SaveNote(ctx context.Context, conversationID, userID, notes string) (domain.ConversationNote, error) {
	note := domain.ConversationNote{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		UserID:         userID,
		Notes:          strings.TrimSpace(notes),
		CreatedAt:      s.now(),
	}
	if err := s.conversations.UpsertNote(ctx, note); err != nil {
		return domain.ConversationNote{}, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

// GetNote devuelve la nota del usuario, o una nota vacia si nunca escribio.
func (s *ConversationService) GetNote(ctx context.Context, conversationID, userID string) (domain.ConversationNote, error) {
	note, err := s.conversations.GetNote(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ConversationNote{ConversationID: conversationID, UserID: userID}, nil
		}
		return domain.ConversationNote{}, err
	}
	return note, nil
}
