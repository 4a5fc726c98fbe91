package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// BankAccountUseCase handles bank account business logic. An account is
// always created together with a shadow asset row inside one transaction so
// the pair can never diverge; the shadow row exists only for asset list
// display and is excluded from aggregation.
type BankAccountUseCase struct {
	txManager TransactionManager
	bankRepo  BankAccountRepository
	assetRepo AssetRepository
	syncer    SnapshotSyncer
	idGen     IDGenerator
}

// NewBankAccountUseCase creates a new BankAccountUseCase.
func NewBankAccountUseCase(
	txManager TransactionManager,
	bankRepo BankAccountRepository,
	assetRepo AssetRepository,
	syncer SnapshotSyncer,
	idGen IDGenerator,
) *BankAccountUseCase {
	return &BankAccountUseCase{
		txManager: txManager,
		bankRepo:  bankRepo,
		assetRepo: assetRepo,
		syncer:    syncer,
		idGen:     idGen,
	}
}

// CreateBankAccountInput represents input for creating a bank account.
type CreateBankAccountInput struct {
	UserID         string
	Name           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string
	InitialDate    time.Time
}

// CreateBankAccount atomically creates a bank account and its companion
// shadow asset, then resynchronizes the owner's snapshots.
func (uc *BankAccountUseCase) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}
	if input.InitialDate.IsZero() {
		input.InitialDate = time.Now().UTC()
	}

	now := time.Now().UTC()

	shadow := &domain.Asset{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		Type:      domain.AssetTypeBankAccount,
		Name:      input.Name,
		Value:     input.CurrentBalance,
		Currency:  input.Currency,
		Date:      domain.DayOf(input.InitialDate).Format("2006-01-02"),
		CreatedAt: now,
	}

	account := &domain.BankAccount{
		ID:             uc.idGen.Generate(),
		UserID:         input.UserID,
		Name:           input.Name,
		InitialBalance: input.InitialBalance,
		CurrentBalance: input.CurrentBalance,
		Currency:       input.Currency,
		InitialDate:    input.InitialDate.UTC(),
		AssetID:        shadow.ID,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.assetRepo.CreateTx(ctx, tx, shadow); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := uc.bankRepo.CreateTx(ctx, tx, account); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, nil); err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateBalancesInput represents input for updating account balances.
type UpdateBalancesInput struct {
	ID             string
	UserID         string
	InitialBalance *decimal.Decimal
	CurrentBalance *decimal.Decimal
}

// UpdateBalances updates an owned account's balances and resynchronizes.
func (uc *BankAccountUseCase) UpdateBalances(ctx context.Context, input UpdateBalancesInput) (*domain.BankAccount, error) {
	account, err := uc.bankRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if account.UserID != input.UserID {
		return nil, domain.ErrNotOwner
	}

	if input.InitialBalance != nil {
		account.InitialBalance = *input.InitialBalance
	}
	if input.CurrentBalance != nil {
		account.CurrentBalance = *input.CurrentBalance
	}

	if err := uc.bankRepo.UpdateBalances(ctx, account.ID, account.InitialBalance, account.CurrentBalance); err != nil {
		return nil, err
	}

	if _, err := uc.syncer.Sync(ctx, input.UserID, nil); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteBankAccount atomically deletes an owned account and its companion
// shadow asset, then resynchronizes.
func (uc *BankAccountUseCase) DeleteBankAccount(ctx context.Context, userID, id string) error {
	account, err := uc.bankRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return domain.ErrNotOwner
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}

	if err := uc.bankRepo.DeleteTx(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if account.AssetID != "" {
		if err := uc.assetRepo.DeleteTx(ctx, tx, account.AssetID); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	_, err = uc.syncer.Sync(ctx, userID, nil)
	return err
}

// ListBankAccounts lists a user's bank accounts.
func (uc *BankAccountUseCase) ListBankAccounts(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	return uc.bankRepo.ListByUser(ctx, userID)
}
