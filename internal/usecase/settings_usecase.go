package usecase

import (
	"context"
	"time"

	"github.com/iho/networth/internal/domain"
)

// SettingsUseCase handles per-user preference storage.
type SettingsUseCase struct {
	settingRepo SettingRepository
	idGen       IDGenerator
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(settingRepo SettingRepository, idGen IDGenerator) *SettingsUseCase {
	return &SettingsUseCase{
		settingRepo: settingRepo,
		idGen:       idGen,
	}
}

// GetSettings returns all of a user's settings as a key/value map.
func (uc *SettingsUseCase) GetSettings(ctx context.Context, userID string) (map[string]string, error) {
	settings, err := uc.settingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// UpdateSetting upserts one setting key for a user.
func (uc *SettingsUseCase) UpdateSetting(ctx context.Context, userID, key, value string) (*domain.Setting, error) {
	if key == "" {
		return nil, domain.ErrMissingRecordKey
	}

	setting, err := uc.settingRepo.FindByUserAndKey(ctx, userID, key)
	if err != nil || setting == nil {
		setting = &domain.Setting{
			ID:     uc.idGen.Generate(),
			UserID: userID,
			Key:    key,
		}
	}

	setting.Value = value
	setting.UpdatedAt = time.Now().UTC()

	if err := uc.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}
