package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// AssetUseCase handles asset business logic. Every successful mutation
// triggers a snapshot synchronization, passing the written row along so the
// recomputation never misses it.
type AssetUseCase struct {
	assetRepo AssetRepository
	syncer    SnapshotSyncer
	idGen     IDGenerator
}

// NewAssetUseCase creates a new AssetUseCase.
func NewAssetUseCase(assetRepo AssetRepository, syncer SnapshotSyncer, idGen IDGenerator) *AssetUseCase {
	return &AssetUseCase{
		assetRepo: assetRepo,
		syncer:    syncer,
		idGen:     idGen,
	}
}

// CreateAssetInput represents input for creating an asset.
type CreateAssetInput struct {
	UserID   string
	Type     string
	Name     string
	Value    decimal.Decimal
	Currency string
	Date     string
}

// CreateAsset creates a new asset and resynchronizes the owner's snapshots.
func (uc *AssetUseCase) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		Type:      input.Type,
		Name:      input.Name,
		Value:     input.Value,
		Currency:  input.Currency,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAssetInput represents input for updating an asset.
type UpdateAssetInput struct {
	ID       string
	UserID   string
	Type     *string
	Name     *string
	Value    *decimal.Decimal
	Currency *string
	Date     *string
}

// UpdateAsset updates an owned asset and resynchronizes snapshots.
func (uc *AssetUseCase) UpdateAsset(ctx context.Context, input UpdateAssetInput) (*domain.Asset, error) {
	asset, err := uc.assetRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if asset.UserID != input.UserID {
		return nil, domain.ErrNotOwner
	}

	if input.Type != nil {
		asset.Type = *input.Type
	}
	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		asset.Name = *input.Name
	}
	if input.Value != nil {
		asset.Value = *input.Value
	}
	if input.Currency != nil {
		if err := domain.ValidateCurrency(*input.Currency); err != nil {
			return nil, err
		}
		asset.Currency = *input.Currency
	}
	if input.Date != nil {
		asset.Date = *input.Date
	}

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// DeleteAsset deletes an owned asset and resynchronizes snapshots.
func (uc *AssetUseCase) DeleteAsset(ctx context.Context, userID, id string) error {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset.UserID != userID {
		return domain.ErrNotOwner
	}

	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		return err
	}

	_, err = uc.syncer.Sync(ctx, userID, nil)
	return err
}

// ListAssets lists a user's assets.
func (uc *AssetUseCase) ListAssets(ctx context.Context, userID string) ([]*domain.Asset, error) {
	return uc.assetRepo.ListByUser(ctx, userID)
}

// GetAsset retrieves an owned asset by ID.
func (uc *AssetUseCase) GetAsset(ctx context.Context, userID, id string) (*domain.Asset, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return asset, nil
}
