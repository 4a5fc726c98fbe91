package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// AssetRepository defines data access for assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	CreateTx(ctx context.Context, tx Transaction, asset *domain.Asset) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Asset, error)
}

// BankAccountRepository defines data access for bank accounts.
type BankAccountRepository interface {
	CreateTx(ctx context.Context, tx Transaction, account *domain.BankAccount) error
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	UpdateBalances(ctx context.Context, id string, initial, current decimal.Decimal) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error)
}

// LiabilityRepository defines data access for liabilities.
type LiabilityRepository interface {
	Create(ctx context.Context, liability *domain.Liability) error
	GetByID(ctx context.Context, id string) (*domain.Liability, error)
	Update(ctx context.Context, liability *domain.Liability) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Liability, error)
}

// SnapshotRepository defines data access for net-worth snapshots. The
// synchronizer is the only writer.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.Snapshot) error
	Update(ctx context.Context, snapshot *domain.Snapshot) error
	// FindByUserAndDay matches any snapshot stored within the same calendar
	// day, tolerating time-of-day drift in older rows.
	FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*domain.Snapshot, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Snapshot, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// SettingRepository defines data access for per-user settings.
type SettingRepository interface {
	FindByUserAndKey(ctx context.Context, userID, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Setting, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// SnapshotSyncer triggers a full recomputation of a user's snapshot series.
// Record mutations call it after every successful write; asset writes pass
// the freshly-written row to guard against read-after-write gaps.
type SnapshotSyncer interface {
	Sync(ctx context.Context, userID string, fresh *domain.Asset) ([]*domain.Snapshot, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
