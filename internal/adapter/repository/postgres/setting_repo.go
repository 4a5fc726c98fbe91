package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/networth/internal/domain"
)

// SettingRepository implements usecase.SettingRepository.
type SettingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

// FindByUserAndKey retrieves one setting.
func (r *SettingRepository) FindByUserAndKey(ctx context.Context, userID, key string) (*domain.Setting, error) {
	query := `
		SELECT id, user_id, key, value, updated_at
		FROM settings
		WHERE user_id = $1 AND key = $2
	`

	var setting domain.Setting
	err := r.pool.QueryRow(ctx, query, userID, key).Scan(
		&setting.ID,
		&setting.UserID,
		&setting.Key,
		&setting.Value,
		&setting.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("setting not found")
	}

	return &setting, err
}

// Upsert writes a setting, relying on the (user_id, key) unique index.
func (r *SettingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	query := `
		INSERT INTO settings (id, user_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		setting.ID,
		setting.UserID,
		setting.Key,
		setting.Value,
		setting.UpdatedAt,
	)

	return err
}

// ListByUser retrieves all settings owned by a user.
func (r *SettingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Setting, error) {
	query := `
		SELECT id, user_id, key, value, updated_at
		FROM settings
		WHERE user_id = $1
		ORDER BY key
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*domain.Setting
	for rows.Next() {
		var setting domain.Setting
		err := rows.Scan(
			&setting.ID,
			&setting.UserID,
			&setting.Key,
			&setting.Value,
			&setting.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		settings = append(settings, &setting)
	}

	return settings, rows.Err()
}
