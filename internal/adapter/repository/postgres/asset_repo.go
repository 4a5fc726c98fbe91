package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
)

// AssetRepository implements usecase.AssetRepository.
type AssetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

const insertAssetSQL = `
	INSERT INTO assets (id, user_id, type, name, value, currency, date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Create inserts a new asset.
func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	_, err := r.pool.Exec(ctx, insertAssetSQL,
		asset.ID,
		asset.UserID,
		asset.Type,
		asset.Name,
		decimalToNumeric(asset.Value),
		asset.Currency,
		asset.Date,
		timeToPgTimestamptz(asset.CreatedAt),
	)

	return err
}

// CreateTx inserts a new asset inside an open transaction.
func (r *AssetRepository) CreateTx(ctx context.Context, tx usecase.Transaction, asset *domain.Asset) error {
	pgxTx := txFrom(tx)

	_, err := pgxTx.Exec(ctx, insertAssetSQL,
		asset.ID,
		asset.UserID,
		asset.Type,
		asset.Name,
		decimalToNumeric(asset.Value),
		asset.Currency,
		asset.Date,
		timeToPgTimestamptz(asset.CreatedAt),
	)

	return err
}

// GetByID retrieves an asset by ID.
func (r *AssetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `
		SELECT id, user_id, type, name, value, currency, date, created_at
		FROM assets
		WHERE id = $1
	`

	asset, err := scanAsset(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAssetNotFound
	}

	return asset, err
}

// Update updates an asset.
func (r *AssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET type = $2, name = $3, value = $4, currency = $5, date = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		asset.ID,
		asset.Type,
		asset.Name,
		decimalToNumeric(asset.Value),
		asset.Currency,
		asset.Date,
	)

	return err
}

// Delete deletes an asset.
func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	return err
}

// DeleteTx deletes an asset inside an open transaction.
func (r *AssetRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := txFrom(tx)
	_, err := pgxTx.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	return err
}

// ListByUser retrieves all assets owned by a user.
func (r *AssetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Asset, error) {
	query := `
		SELECT id, user_id, type, name, value, currency, date, created_at
		FROM assets
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var (
		asset     domain.Asset
		value     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&asset.ID,
		&asset.UserID,
		&asset.Type,
		&asset.Name,
		&value,
		&asset.Currency,
		&asset.Date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	asset.Value = numericToDecimal(value)
	asset.CreatedAt = createdAt.Time

	return &asset, nil
}
