package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/llm"
	"chelas-api/internal/repository"
)

// TopicService genera temas de conversacion con el LLM a partir de los
// intereses de ambos participantes. Nunca deja una conversacion sin tema: si
// la API falla se entrega una pregunta enlatada.
type TopicService struct {
	logger        *zap.Logger
	llmClient     llm.Client
	interests     repository.InterestRepository
	conversations repository.ConversationRepository
	limiter       TopicRateLimiter
	pickIndex     func(n int) int
}

var ErrTopicRateLimited = errors.New("topic generation rate limited")

const topicGenerationWindow = 30 * time.Second

func NewTopicService(
	logger *zap.Logger,
	llmClient llm.Client,
	interests repository.InterestRepository,
	conversations repository.ConversationRepository,
	limiter TopicRateLimiter,
) *TopicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewTopicRateLimiter(topicGenerationWindow, 3)
	}
	return &TopicService{
		logger:        logger,
		llmClient:     llmClient,
		interests:     interests,
		conversations: conversations,
		limiter:       limiter,
		pickIndex:     rand.Intn,
	}
}

// GenerateTopic produce una pregunta abierta para la conversacion y la
// registra en conversation_topics. El limite por conversacion evita que un
// cliente impaciente queme la cuota de la API pidiendo temas en rafaga.
func (s *TopicService) GenerateTopic(ctx context.Context, conversationID string) (string, error) {
	if !s.limiter.Allow(conversationID) {
		return "", ErrTopicRateLimited
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("get conversation %s: %w", conversationID, err)
	}

	input, err := s.buildPromptInput(ctx, conv)
	if err != nil {
		return "", err
	}

	topic := s.generateSingle(ctx, input)
	s.persistTopic(ctx, conversationID, topic)
	return topic, nil
}

// GenerateTopicsWithOptions produce la variante enriquecida: varias preguntas
// con opciones sugeridas de respuesta. Cualquier fallo del LLM o del parseo
// degrada al set enlatado, nunca a un error hacia la UI.
func (s *TopicService) GenerateTopicsWithOptions(ctx context.Context, conversationID string) ([]domain.TopicWithOptions, error) {
	if !s.limiter.Allow(conversationID) {
		return nil, ErrTopicRateLimited
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("get conversation %s: %w", conversationID, err)
	}

	input, err := s.buildPromptInput(ctx, conv)
	if err != nil {
		return nil, err
	}

	topics := s.generateWithOptions(ctx, input)
	for _, t := range topics {
		s.persistTopic(ctx, conversationID, t.Question)
	}
	return topics, nil
}

type topicPromptInput struct {
	interestsA      []string
	interestsB      []string
	avoidTopics     []string
	matchPercentage int
}

func (s *TopicService) buildPromptInput(ctx context.Context, conv domain.Conversation) (topicPromptInput, error) {
	labels, err := s.interestLabels(ctx)
	if err != nil {
		return topicPromptInput{}, fmt.Errorf("load interest catalog: %w", err)
	}

	interestsA, avoidA, err := s.userInterestLabels(ctx, conv.UserA, labels)
	if err != nil {
		return topicPromptInput{}, err
	}
	interestsB, avoidB, err := s.userInterestLabels(ctx, conv.UserB, labels)
	if err != nil {
		return topicPromptInput{}, err
	}

	matchPercentage := 0
	if conv.MatchPercentage != nil {
		matchPercentage = *conv.MatchPercentage
	}

	return topicPromptInput{
		interestsA:      interestsA,
		interestsB:      interestsB,
		avoidTopics:     append(avoidA, avoidB...),
		matchPercentage: matchPercentage,
	}, nil
}

func (s *TopicService) interestLabels(ctx context.Context) (map[string]string, error) {
	catalog, err := s.interests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(catalog))
	for _, interest := range catalog {
		labels[interest.ID] = interest.Name
	}
	return labels, nil
}

func (s *TopicService) userInterestLabels(ctx context.Context, userID string, labels map[string]string) (selected, avoided []string, err error) {
	if userID == domain.BotID {
		return nil, nil, nil
	}
	rows, err := s.interests.ListUserInterests(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load interests for %s: %w", userID, err)
	}
	for _, row := range rows {
		label, ok := labels[row.InterestID]
		if !ok {
			// Los ids "custom-" no estan en el catalogo; se muestra el slug.
			label = strings.TrimPrefix(row.InterestID, "custom-")
		}
		if row.IsAvoided {
			avoided = append(avoided, label)
		} else {
			selected = append(selected, label)
		}
	}
	return selected, avoided, nil
}

func (s *TopicService) generateSingle(ctx context.Context, input topicPromptInput) string {
	prompt := buildTopicPrompt(input.interestsA, input.interestsB, input.avoidTopics, input.matchPercentage)
	raw, err := s.llmClient.Generate(ctx, topicSystemPrompt, prompt)
	if err != nil {
		s.logger.Warn("topic generation failed, using fallback", zap.Error(err))
		return fallbackTopics[s.pickIndex(len(fallbackTopics))]
	}
	topic := strings.TrimSpace(raw)
	if topic == "" {
		return fallbackTopics[s.pickIndex(len(fallbackTopics))]
	}
	return topic
}

func (s *TopicService) generateWithOptions(ctx context.Context, input topicPromptInput) []domain.TopicWithOptions {
	prompt := buildTopicsWithOptionsPrompt(input.interestsA, input.interestsB, input.avoidTopics, input.matchPercentage)
	raw, err := s.llmClient.Generate(ctx, topicSystemPrompt, prompt)
	if err != nil {
		s.logger.Warn("topics with options generation failed, using fallback", zap.Error(err))
		return fallbackTopicsWithOptions
	}

	extracted := extractFirstJSONArray(raw)
	if extracted == "" {
		s.logger.Warn("topics with options response had no json array")
		return fallbackTopicsWithOptions
	}

	var topics []domain.TopicWithOptions
	if err := json.Unmarshal([]byte(extracted), &topics); err != nil {
		s.logger.Warn("topics with options parse failed", zap.Error(err))
		return fallbackTopicsWithOptions
	}
	if len(topics) == 0 {
		return fallbackTopicsWithOptions
	}
	return topics
}

func (s *TopicService) persistTopic(ctx context.Context, conversationID, topic string) {
	record := domain.ConversationTopic{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Topic:          topic,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.conversations.AddTopic(ctx, record); err != nil {
		s.logger.Warn("topic persist failed", zap.Error(err), zap.String("conversation_id", conversationID))
	}
}

// TopicRateLimiter limita la frecuencia de generacion por conversacion.
type TopicRateLimiter interface {
	Allow(key string) bool
}

type topicRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewTopicRateLimiter crea un rate limiter en memoria.
func NewTopicRateLimiter(window time.Duration, max int) TopicRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &topicRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *topicRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)

	recent := l.hits[key][:0]
	for _, hit := range l.hits[key] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}
	if len(recent) >= l.max {
		l.hits[key] = recent
		return false
	}
	l.hits[key] = append(recent, now)
	return true
}
