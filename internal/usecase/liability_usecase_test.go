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

func newLiabilityFixture() (*usecase.LiabilityUseCase, *mocks.MockLiabilityRepository, *mocks.MockSnapshotSyncer) {
	repo := mocks.NewMockLiabilityRepository()
	syncer := mocks.NewMockSnapshotSyncer()
	uc := usecase.NewLiabilityUseCase(repo, syncer, mocks.NewSequentialIDGenerator("liab"))
	return uc, repo, syncer
}

func TestLiabilityUseCase_CreateLiability(t *testing.T) {
	uc, repo, syncer := newLiabilityFixture()

	rate := decimal.NewFromFloat(4.5)
	liability, err := uc.CreateLiability(context.Background(), usecase.CreateLiabilityInput{
		UserID:            "u1",
		Name:              "Mortgage",
		Category:          "loan",
		Balance:           decimal.NewFromInt(250000),
		InterestRate:      &rate,
		Institution:       "Some Bank",
		IncludeInNetWorth: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if liability.ID == "" {
		t.Error("expected generated ID")
	}
	if liability.CreatedAt.IsZero() {
		t.Error("expected creation timestamp set")
	}

	stored, err := repo.GetByID(context.Background(), liability.ID)
	if err != nil {
		t.Fatalf("expected liability stored: %v", err)
	}
	if !stored.Balance.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("expected balance 250000, got %s", stored.Balance)
	}

	if len(syncer.Calls()) != 1 {
		t.Errorf("expected 1 sync call, got %d", len(syncer.Calls()))
	}
}

func TestLiabilityUseCase_CreateLiabilityInvalidName(t *testing.T) {
	uc, _, syncer := newLiabilityFixture()

	_, err := uc.CreateLiability(context.Background(), usecase.CreateLiabilityInput{
		UserID: "u1",
		Name:   "",
	})
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if len(syncer.Calls()) != 0 {
		t.Error("sync must not run after a failed creation")
	}
}

func TestLiabilityUseCase_UpdateLiabilityToggleInclusion(t *testing.T) {
	uc, _, syncer := newLiabilityFixture()

	liability, err := uc.CreateLiability(context.Background(), usecase.CreateLiabilityInput{
		UserID:            "u1",
		Name:              "Card",
		Balance:           decimal.NewFromInt(500),
		IncludeInNetWorth: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	include := false
	updated, err := uc.UpdateLiability(context.Background(), usecase.UpdateLiabilityInput{
		ID:                liability.ID,
		UserID:            "u1",
		IncludeInNetWorth: &include,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.IncludeInNetWorth {
		t.Error("expected inclusion toggled off")
	}
	if updated.Name != "Card" {
		t.Errorf("absent fields must stay unchanged, got name %q", updated.Name)
	}
	if len(syncer.Calls()) != 2 {
		t.Errorf("expected 2 sync calls, got %d", len(syncer.Calls()))
	}
}

func TestLiabilityUseCase_UpdateLiabilityNotOwner(t *testing.T) {
	uc, _, _ := newLiabilityFixture()

	liability, err := uc.CreateLiability(context.Background(), usecase.CreateLiabilityInput{
		UserID:  "u1",
		Name:    "Card",
		Balance: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance := decimal.NewFromInt(1)
	_, err = uc.UpdateLiability(context.Background(), usecase.UpdateLiabilityInput{
		ID:      liability.ID,
		UserID:  "u2",
		Balance: &balance,
	})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestLiabilityUseCase_DeleteLiability(t *testing.T) {
	uc, repo, syncer := newLiabilityFixture()

	liability, err := uc.CreateLiability(context.Background(), usecase.CreateLiabilityInput{
		UserID:  "u1",
		Name:    "Card",
		Balance: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteLiability(context.Background(), "u1", liability.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(context.Background(), liability.ID); !errors.Is(err, domain.ErrLiabilityNotFound) {
		t.Error("expected liability deleted")
	}
	if len(syncer.Calls()) != 2 {
		t.Errorf("expected 2 sync calls, got %d", len(syncer.Calls()))
	}
}
