package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// LiabilityUseCase handles liability business logic. Mutations trigger a
// snapshot synchronization; the includeInNetWorth flag toggles a liability's
// effect on the series without deleting the record.
type LiabilityUseCase struct {
	liabilityRepo LiabilityRepository
	syncer        SnapshotSyncer
	idGen         IDGenerator
}

// NewLiabilityUseCase creates a new LiabilityUseCase.
func NewLiabilityUseCase(liabilityRepo LiabilityRepository, syncer SnapshotSyncer, idGen IDGenerator) *LiabilityUseCase {
	return &LiabilityUseCase{
		liabilityRepo: liabilityRepo,
		syncer:        syncer,
		idGen:         idGen,
	}
}

// CreateLiabilityInput represents input for creating a liability.
type CreateLiabilityInput struct {
	UserID            string
	Name              string
	Category          string
	Balance           decimal.Decimal
	InterestRate      *decimal.Decimal
	Institution       string
	MonthlyPayment    *decimal.Decimal
	RemainingMonths   *int
	IncludeInNetWorth bool
	Notes             string
}

// CreateLiability creates a new liability and resynchronizes snapshots.
func (uc *LiabilityUseCase) CreateLiability(ctx context.Context, input CreateLiabilityInput) (*domain.Liability, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	liability := &domain.Liability{
		ID:                uc.idGen.Generate(),
		UserID:            input.UserID,
		Name:              input.Name,
		Category:          input.Category,
		Balance:           input.Balance,
		InterestRate:      input.InterestRate,
		Institution:       input.Institution,
		MonthlyPayment:    input.MonthlyPayment,
		RemainingMonths:   input.RemainingMonths,
		IncludeInNetWorth: input.IncludeInNetWorth,
		Notes:             input.Notes,
		CreatedAt:         time.Now().UTC(),
	}

	if err := uc.liabilityRepo.Create(ctx, liability); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, nil); err != nil {
		return nil, err
	}

	return liability, nil
}

// UpdateLiabilityInput represents input for updating a liability.
type UpdateLiabilityInput struct {
	ID                string
	UserID            string
	Name              *string
	Category          *string
	Balance           *decimal.Decimal
	InterestRate      *decimal.Decimal
	Institution       *string
	MonthlyPayment    *decimal.Decimal
	RemainingMonths   *int
	IncludeInNetWorth *bool
	Notes             *string
}

// UpdateLiability updates an owned liability and resynchronizes snapshots.
func (uc *LiabilityUseCase) UpdateLiability(ctx context.Context, input UpdateLiabilityInput) (*domain.Liability, error) {
	liability, err := uc.liabilityRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if liability.UserID != input.UserID {
		return nil, domain.ErrNotOwner
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		liability.Name = *input.Name
	}
	if input.Category != nil {
		liability.Category = *input.Category
	}
	if input.Balance != nil {
		liability.Balance = *input.Balance
	}
	if input.InterestRate != nil {
		liability.InterestRate = input.InterestRate
	}
	if input.Institution != nil {
		liability.Institution = *input.Institution
	}
	if input.MonthlyPayment != nil {
		liability.MonthlyPayment = input.MonthlyPayment
	}
	if input.RemainingMonths != nil {
		liability.RemainingMonths = input.RemainingMonths
	}
	if input.IncludeInNetWorth != nil {
		liability.IncludeInNetWorth = *input.IncludeInNetWorth
	}
	if input.Notes != nil {
		liability.Notes = *input.Notes
	}

	if err := uc.liabilityRepo.Update(ctx, liability); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, nil); err != nil {
		return nil, err
	}

	return liability, nil
}

// DeleteLiability deletes an owned liability and resynchronizes snapshots.
func (uc *LiabilityUseCase) DeleteLiability(ctx context.Context, userID, id string) error {
	liability, err := uc.liabilityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if liability.UserID != userID {
		return domain.ErrNotOwner
	}

	if err := uc.liabilityRepo.Delete(ctx, id); err != nil {
		return err
	}

	_, err = uc.syncer.Sync(ctx, userID, nil)
	return err
}

// ListLiabilities lists a user's liabilities.
func (uc *LiabilityUseCase) ListLiabilities(ctx context.Context, userID string) ([]*domain.Liability, error) {
	return uc.liabilityRepo.ListByUser(ctx, userID)
}
