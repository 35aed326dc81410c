package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"chelas-api/internal/domain"
)

// ConversationRepository cubre conversaciones, sus temas generados y las
// notas por usuario.
type ConversationRepository interface {
	Create(ctx context.Context, conv domain.Conversation) error
	GetByID(ctx context.Context, id string) (domain.Conversation, error)
	GetLatestBetween(ctx context.Context, userA, userB string) (domain.Conversation, error)
	UpdateMatchPercentage(ctx context.Context, id string, percentage int) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
	SetFollowUp(ctx context.Context, id string, followUp bool) error
	End(ctx context.Context, id string, endedAt time.Time) error
	AddTopic(ctx context.Context, topic domain.ConversationTopic) error
	ListTopics(ctx context.Context, conversationID string) ([]domain.ConversationTopic, error)
	UpsertNote(ctx context.Context, note domain.ConversationNote) error
	GetNote(ctx context.Context, conversationID, userID string) (domain.ConversationNote, error)
	ListFlaggedByUser(ctx context.Context, userID string, since time.Time) ([]domain.Conversation, error)
}

// PgConversationRepository implementa ConversationRepository usando pgxpool.
type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

const conversationColumns = `id, user_a, user_b, is_favorite, follow_up, match_percentage, started_at, ended_at`

func (r *PgConversationRepository) Create(ctx context.Context, conv domain.Conversation) error {
	const query = `
		INSERT INTO conversations (id, user_a, user_b, is_favorite, follow_up, match_percentage, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		conv.ID,
		conv.UserA,
		conv.UserB,
		conv.IsFavorite,
		conv.FollowUp,
		conv.MatchPercentage,
		conv.StartedAt,
	)
	return err
}

func (r *PgConversationRepository) GetByID(ctx context.Context, id string) (domain.Conversation, error) {
	const query = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE id = $1
	`
	var c domain.Conversation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserA, &c.UserB, &c.IsFavorite, &c.FollowUp, &c.MatchPercentage, &c.StartedAt, &c.EndedAt,
	)
	return c, err
}

// GetLatestBetween busca la conversacion mas reciente entre dos usuarios, en
// cualquier orden del par.
func (r *PgConversationRepository) GetLatestBetween(ctx context.Context, userA, userB string) (domain.Conversation, error) {
	const query = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE (user_a = $1 AND user_b = $2) OR (user_a = $2 AND user_b = $1)
		ORDER BY started_at DESC
		LIMIT 1
	`
	var c domain.Conversation
	err := r.pool.QueryRow(ctx, query, userA, userB).Scan(
		&c.ID, &c.UserA, &c.UserB, &c.IsFavorite, &c.FollowUp, &c.MatchPercentage, &c.StartedAt, &c.EndedAt,
	)
	return c, err
}

func (r *PgConversationRepository) UpdateMatchPercentage(ctx context.Context, id string, percentage int) error {
	const query = `
		UPDATE conversations
		SET match_percentage = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, percentage)
	return err
}

func (r *PgConversationRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	const query = `
		UPDATE conversations
		SET is_favorite = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, favorite)
	return err
}

func (r *PgConversationRepository) SetFollowUp(ctx context.Context, id string, followUp bool) error {
	const query = `
		UPDATE conversations
		SET follow_up = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, followUp)
	return err
}

func (r *PgConversationRepository) End(ctx context.Context, id string, endedAt time.Time) error {
	const query = `
		UPDATE conversations
		SET ended_at = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, endedAt)
	return err
}

func (r *PgConversationRepository) AddTopic(ctx context.Context, topic domain.ConversationTopic) error {
	const query = `
		INSERT INTO conversation_topics (id, conversation_id, topic, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, topic.ID, topic.ConversationID, topic.Topic, topic.CreatedAt)
	return err
}

func (r *PgConversationRepository) ListTopics(ctx context.Context, conversationID string) ([]domain.ConversationTopic, error) {
	const query = `
		SELECT id, conversation_id, topic, created_at
		FROM conversation_topics
		WHERE conversation_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []domain.ConversationTopic
	for rows.Next() {
		var t domain.ConversationTopic
		if err := rows.Scan(&t.ID, &t.ConversationID, &t.Topic, &t.CreatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *PgConversationRepository) UpsertNote(ctx context.Context, note domain.ConversationNote) error {
	const query = `
		INSERT INTO conversation_notes (id, conversation_id, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (conversation_id, user_id) DO UPDATE SET notes = EXCLUDED.notes
	`
	_, err := r.pool.Exec(ctx, query, note.ID, note.ConversationID, note.UserID, note.Notes, note.CreatedAt)
	return err
}

func (r *PgConversationRepository) GetNote(ctx context.Context, conversationID, userID string) (domain.ConversationNote, error) {
	const query = `
		SELECT id, conversation_id, user_id, notes, created_at
		FROM conversation_notes
		WHERE conversation_id = $1 AND user_id = $2
	`
	var n domain.ConversationNote
	err := r.pool.QueryRow(ctx, query, conversationID, userID).Scan(
		&n.ID, &n.ConversationID, &n.UserID, &n.Notes, &n.CreatedAt,
	)
	return n, err
}

// ListFlaggedByUser devuelve las conversaciones marcadas como favoritas o con
// seguimiento iniciadas por el usuario desde la fecha dada; alimenta el
// reporte diario.
func (r *PgConversationRepository) ListFlaggedByUser(ctx context.Context, userID string, since time.Time) ([]domain.Conversation, error) {
	const query = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE user_a = $1 AND started_at >= $2 AND (is_favorite = TRUE OR follow_up = TRUE)
		ORDER BY started_at
	`
	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		if err := rows.Scan(
			&c.ID, &c.UserA, &c.UserB, &c.IsFavorite, &c.FollowUp, &c.MatchPercentage, &c.StartedAt, &c.EndedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
