package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
	"github.com/iho/networth/internal/usecase/mocks"
)

func TestAssetUseCase_CreateAsset(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateAssetInput
		expectError error
	}{
		{
			name: "successful creation",
			input: usecase.CreateAssetInput{
				UserID:   "u1",
				Type:     "Investment",
				Name:     "Index fund",
				Value:    decimal.NewFromInt(1000),
				Currency: "USD",
				Date:     "2024-01-10",
			},
		},
		{
			name: "empty name rejected",
			input: usecase.CreateAssetInput{
				UserID:   "u1",
				Name:     "",
				Currency: "USD",
			},
			expectError: domain.ErrInvalidName,
		},
		{
			name: "unknown currency rejected",
			input: usecase.CreateAssetInput{
				UserID:   "u1",
				Name:     "Gold",
				Currency: "XYZ",
			},
			expectError: domain.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAssetRepository()
			syncer := mocks.NewMockSnapshotSyncer()
			uc := usecase.NewAssetUseCase(repo, syncer, mocks.NewSequentialIDGenerator("asset"))

			asset, err := uc.CreateAsset(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected %v, got %v", tt.expectError, err)
				}
				if len(syncer.Calls()) != 0 {
					t.Error("sync must not run after a failed creation")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if asset.Name != tt.input.Name {
				t.Errorf("expected name %q, got %q", tt.input.Name, asset.Name)
			}

			calls := syncer.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected 1 sync call, got %d", len(calls))
			}
			if calls[0].Fresh == nil || calls[0].Fresh.ID != asset.ID {
				t.Error("expected the created asset passed to sync")
			}
		})
	}
}

func TestAssetUseCase_UpdateAsset(t *testing.T) {
	repo := mocks.NewMockAssetRepository()
	syncer := mocks.NewMockSnapshotSyncer()
	uc := usecase.NewAssetUseCase(repo, syncer, mocks.NewSequentialIDGenerator("asset"))

	seedAsset(t, repo, "a1", "u1", "2024-01-10", 1000)

	newValue := decimal.NewFromInt(2000)
	newDate := "2024-02-01"
	asset, err := uc.UpdateAsset(context.Background(), usecase.UpdateAssetInput{
		ID:     "a1",
		UserID: "u1",
		Value:  &newValue,
		Date:   &newDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !asset.Value.Equal(newValue) {
		t.Errorf("expected value 2000, got %s", asset.Value)
	}
	if asset.Date != newDate {
		t.Errorf("expected date %q, got %q", newDate, asset.Date)
	}
	if asset.Name != "asset a1" {
		t.Errorf("absent fields must stay unchanged, got name %q", asset.Name)
	}

	calls := syncer.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 sync call, got %d", len(calls))
	}
	if calls[0].Fresh == nil || !calls[0].Fresh.Value.Equal(newValue) {
		t.Error("expected the updated asset passed to sync")
	}
}

func TestAssetUseCase_UpdateAssetNotOwner(t *testing.T) {
	repo := mocks.NewMockAssetRepository()
	syncer := mocks.NewMockSnapshotSyncer()
	uc := usecase.NewAssetUseCase(repo, syncer, mocks.NewSequentialIDGenerator("asset"))

	seedAsset(t, repo, "a1", "u1", "2024-01-10", 1000)

	name := "hijacked"
	_, err := uc.UpdateAsset(context.Background(), usecase.UpdateAssetInput{
		ID:     "a1",
		UserID: "u2",
		Name:   &name,
	})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if len(syncer.Calls()) != 0 {
		t.Error("sync must not run for a rejected update")
	}
}

func TestAssetUseCase_DeleteAsset(t *testing.T) {
	repo := mocks.NewMockAssetRepository()
	syncer := mocks.NewMockSnapshotSyncer()
	uc := usecase.NewAssetUseCase(repo, syncer, mocks.NewSequentialIDGenerator("asset"))

	seedAsset(t, repo, "a1", "u1", "2024-01-10", 1000)

	if err := uc.DeleteAsset(context.Background(), "u1", "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(context.Background(), "a1"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Error("expected asset deleted")
	}

	calls := syncer.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 sync call, got %d", len(calls))
	}
	if calls[0].Fresh != nil {
		t.Error("deletion must sync without a fresh asset")
	}
}

func TestAssetUseCase_DeleteAssetNotOwner(t *testing.T) {
	repo := mocks.NewMockAssetRepository()
	syncer := mocks.NewMockSnapshotSyncer()
	uc := usecase.NewAssetUseCase(repo, syncer, mocks.NewSequentialIDGenerator("asset"))

	seedAsset(t, repo, "a1", "u1", "2024-01-10", 1000)

	if err := uc.DeleteAsset(context.Background(), "u2", "a1"); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestAssetUseCase_GetAsset(t *testing.T) {
	repo := mocks.NewMockAssetRepository()
	uc := usecase.NewAssetUseCase(repo, mocks.NewMockSnapshotSyncer(), mocks.NewSequentialIDGenerator("asset"))

	seedAsset(t, repo, "a1", "u1", "2024-01-10", 1000)

	asset, err := uc.GetAsset(context.Background(), "u1", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.ID != "a1" {
		t.Errorf("expected a1, got %s", asset.ID)
	}

	if _, err := uc.GetAsset(context.Background(), "u2", "a1"); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}
