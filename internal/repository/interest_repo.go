package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chelas-api/internal/domain"
)

// InterestRepository cubre el catalogo global y la tabla puente user_interests.
type InterestRepository interface {
	ListAll(ctx context.Context) ([]domain.Interest, error)
	AvoidInterestIDs(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, interest domain.Interest) error
	ReplaceUserInterests(ctx context.Context, userID string, selected, avoided []string) error
	ListUserInterests(ctx context.Context, userID string) ([]domain.UserInterest, error)
}

// PgInterestRepository implementa InterestRepository usando pgxpool.
type PgInterestRepository struct {
	pool *pgxpool.Pool
}

func NewPgInterestRepository(pool *pgxpool.Pool) *PgInterestRepository {
	return &PgInterestRepository{pool: pool}
}

func (r *PgInterestRepository) ListAll(ctx context.Context) ([]domain.Interest, error) {
	const query = `
		SELECT id, name, category, created_at
		FROM interests
		ORDER BY category, name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interests []domain.Interest
	for rows.Next() {
		var i domain.Interest
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.CreatedAt); err != nil {
			return nil, err
		}
		interests = append(interests, i)
	}
	return interests, rows.Err()
}

func (r *PgInterestRepository) AvoidInterestIDs(ctx context.Context) ([]string, error) {
	const query = `
		SELECT id
		FROM interests
		WHERE category = $1
	`
	rows, err := r.pool.Query(ctx, query, domain.CategoryAvoid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgInterestRepository) Upsert(ctx context.Context, interest domain.Interest) error {
	const query = `
		INSERT INTO interests (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category
	`
	createdAt := interest.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, query, interest.ID, interest.Name, interest.Category, createdAt)
	return err
}

// ReplaceUserInterests sustituye todas las filas del usuario en una sola
// transaccion: la tabla puente refleja siempre la ultima seleccion completa.
func (r *PgInterestRepository) ReplaceUserInterests(ctx context.Context, userID string, selected, avoided []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_interests WHERE user_id = $1`, userID); err != nil {
		return err
	}

	const insert = `
		INSERT INTO user_interests (id, user_id, interest_id, is_avoided, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, interest_id) DO UPDATE SET is_avoided = EXCLUDED.is_avoided
	`
	now := time.Now().UTC()
	for _, interestID := range selected {
		if _, err := tx.Exec(ctx, insert, uuid.NewString(), userID, interestID, false, now); err != nil {
			return err
		}
	}
	for _, interestID := range avoided {
		if _, err := tx.Exec(ctx, insert, uuid.NewString(), userID, interestID, true, now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PgInterestRepository) ListUserInterests(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	const query = `
		SELECT id, user_id, interest_id, is_avoided, created_at
		FROM user_interests
		WHERE user_id = $1
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserInterest
	for rows.Next() {
		var ui domain.UserInterest
		if err := rows.Scan(&ui.ID, &ui.UserID, &ui.InterestID, &ui.IsAvoided, &ui.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ui)
	}
	return out, rows.Err()
}
