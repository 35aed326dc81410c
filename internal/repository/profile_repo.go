package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"chelas-api/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
// La columna super_profile viaja como documento opaco: este repositorio no
// interpreta el arbol, solo lo lee y lo reemplaza completo.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	ListAvailable(ctx context.Context, excludeID string) ([]domain.Profile, error)
	UpdateBasics(ctx context.Context, id, name, description, externalAnalysis string) error
	SetAvailability(ctx context.Context, id string, available bool) error
	GetSuperProfile(ctx context.Context, userID string) (json.RawMessage, error)
	UpdateSuperProfile(ctx context.Context, userID string, doc json.RawMessage) error
	GetPreferredTopics(ctx context.Context, userID string) ([]string, error)
	UpdatePreferredTopics(ctx context.Context, userID string, topics []string) error
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (id, name, avatar, descripcion_personal, analisis_externo, is_available, temas_preferidos, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Avatar,
		profile.DescriptionNote,
		profile.ExternalAnalysis,
		profile.IsAvailable,
		profile.PreferredTopics,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `
		SELECT id, name, avatar, COALESCE(descripcion_personal, ''), COALESCE(analisis_externo, ''),
		       COALESCE(is_available, FALSE), COALESCE(temas_preferidos, '{}'), created_at
		FROM profiles
		WHERE id = $1
	`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Avatar,
		&p.DescriptionNote,
		&p.ExternalAnalysis,
		&p.IsAvailable,
		&p.PreferredTopics,
		&p.CreatedAt,
	)
	return p, err
}

func (r *PgProfileRepository) ListAvailable(ctx context.Context, excludeID string) ([]domain.Profile, error) {
	const query = `
		SELECT id, name, avatar, COALESCE(descripcion_personal, ''), COALESCE(analisis_externo, ''),
		       COALESCE(is_available, FALSE), COALESCE(temas_preferidos, '{}'), created_at
		FROM profiles
		WHERE is_available = TRUE AND id <> $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Avatar,
			&p.DescriptionNote,
			&p.ExternalAnalysis,
			&p.IsAvailable,
			&p.PreferredTopics,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *PgProfileRepository) UpdateBasics(ctx context.Context, id, name, description, externalAnalysis string) error {
	const query = `
		UPDATE profiles
		SET name = $2, descripcion_personal = $3, analisis_externo = $4
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, name, description, externalAnalysis)
	return err
}

func (r *PgProfileRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	const query = `
		UPDATE profiles
		SET is_available = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, available)
	return err
}

func (r *PgProfileRepository) GetSuperProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	const query = `
		SELECT super_profile
		FROM profiles
		WHERE id = $1
	`
	var doc []byte
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateSuperProfile reemplaza el documento completo; nunca hace merge con el
// estado previo.
func (r *PgProfileRepository) UpdateSuperProfile(ctx context.Context, userID string, doc json.RawMessage) error {
	const query = `
		UPDATE profiles
		SET super_profile = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, userID, doc)
	return err
}

func (r *PgProfileRepository) GetPreferredTopics(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT COALESCE(temas_preferidos, '{}')
		FROM profiles
		WHERE id = $1
	`
	var topics []string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *PgProfileRepository) UpdatePreferredTopics(ctx context.Context, userID string, topics []string) error {
	const query = `
		UPDATE profiles
		SET temas_preferidos = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, userID, topics)
	return err
}
