package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations crea el esquema si no existe. Cada sentencia es idempotente para
// poder ejecutarse en cada arranque.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT 'user',
		descripcion_personal TEXT,
		analisis_externo TEXT,
		is_available BOOLEAN DEFAULT FALSE,
		temas_preferidos TEXT[] DEFAULT '{}',
		super_profile JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS interests (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS user_interests (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		interest_id TEXT NOT NULL,
		is_avoided BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_user_interest UNIQUE (user_id, interest_id)
	)`,

	`CREATE TABLE IF NOT EXISTS conversations (
		id UUID PRIMARY KEY,
		user_a UUID NOT NULL,
		user_b UUID NOT NULL,
		is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
		follow_up BOOLEAN NOT NULL DEFAULT FALSE,
		match_percentage INTEGER,
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ended_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS conversation_topics (
		id UUID PRIMARY KEY,
		conversation_id UUID NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		topic TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS conversation_notes (
		id UUID PRIMARY KEY,
		conversation_id UUID NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		user_id UUID NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_conversation_note UNIQUE (conversation_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS drink_expenses (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_interests_user ON user_interests(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_user_a ON conversations(user_a, started_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_user_b ON conversations(user_b, started_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_topics_conversation ON conversation_topics(conversation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_user_day ON drink_expenses(user_id, created_at)`,
}

// Migrate ejecuta las migraciones de arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
