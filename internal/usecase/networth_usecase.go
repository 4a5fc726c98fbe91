package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// SyncRecorder records synchronizer telemetry.
type SyncRecorder interface {
	ObserveSync(duration time.Duration, snapshots int)
}

// NetWorthUseCase recomputes and serves the per-user net-worth time series.
// Every record mutation triggers a full recomputation of the series rather
// than an incremental patch, which keeps the snapshots correct under
// arbitrary out-of-order edits to historical records.
type NetWorthUseCase struct {
	assetRepo     AssetRepository
	bankRepo      BankAccountRepository
	liabilityRepo LiabilityRepository
	snapshotRepo  SnapshotRepository
	idGen         IDGenerator
	cache         Cache
	recorder      SyncRecorder
	now           func() time.Time
}

// NewNetWorthUseCase creates a new NetWorthUseCase. cache and recorder may
// be nil.
func NewNetWorthUseCase(
	assetRepo AssetRepository,
	bankRepo BankAccountRepository,
	liabilityRepo LiabilityRepository,
	snapshotRepo SnapshotRepository,
	idGen IDGenerator,
	cache Cache,
	recorder SyncRecorder,
) *NetWorthUseCase {
	return &NetWorthUseCase{
		assetRepo:     assetRepo,
		bankRepo:      bankRepo,
		liabilityRepo: liabilityRepo,
		snapshotRepo:  snapshotRepo,
		idGen:         idGen,
		cache:         cache,
		recorder:      recorder,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *NetWorthUseCase) WithClock(now func() time.Time) *NetWorthUseCase {
	uc.now = now
	return uc
}

// Sync recomputes the full snapshot series for a user from current asset,
// bank-account and liability state and persists it idempotently.
//
// fresh, when non-nil, is a just-written asset that may not yet be visible
// to a follow-up read; it is merged into the loaded set by ID.
func (uc *NetWorthUseCase) Sync(ctx context.Context, userID string, fresh *domain.Asset) ([]*domain.Snapshot, error) {
	started := uc.now()

	assets, err := uc.assetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	assets = mergeFreshAsset(assets, fresh)

	// Shadow rows mirror bank accounts for list display only; counting them
	// here would double count the account.
	active := assets[:0]
	for _, a := range assets {
		if !a.IsShadow() {
			active = append(active, a)
		}
	}
	assets = active

	liabilities, err := uc.liabilityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load liabilities: %w", err)
	}

	bankAccounts, err := uc.bankRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load bank accounts: %w", err)
	}

	// A user with no financial records has no net-worth history.
	if len(assets) == 0 && len(liabilities) == 0 && len(bankAccounts) == 0 {
		if err := uc.snapshotRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("clear snapshots: %w", err)
		}
		uc.invalidateCache(ctx, userID)
		return []*domain.Snapshot{}, nil
	}

	today := domain.DayOf(uc.now())
	axis := uc.dateAxis(assets, bankAccounts, today)

	snapshots := make([]*domain.Snapshot, 0, len(axis))
	for _, day := range axis {
		total := totalOn(day, today, assets, bankAccounts, liabilities)

		snapshot, err := uc.upsertSnapshot(ctx, userID, day, total)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	uc.invalidateCache(ctx, userID)

	if uc.recorder != nil {
		uc.recorder.ObserveSync(uc.now().Sub(started), len(snapshots))
	}

	return snapshots, nil
}

// dateAxis collects the distinct calendar days of every asset date and bank
// account initial date, always including today. Unparseable asset dates are
// skipped, not fatal.
func (uc *NetWorthUseCase) dateAxis(assets []*domain.Asset, bankAccounts []*domain.BankAccount, today time.Time) []time.Time {
	seen := make(map[int64]time.Time)

	for _, a := range assets {
		if day, ok := a.EffectiveDay(); ok {
			seen[day.Unix()] = day
		}
	}
	for _, b := range bankAccounts {
		day := domain.DayOf(b.InitialDate)
		seen[day.Unix()] = day
	}
	seen[today.Unix()] = today

	axis := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		axis = append(axis, day)
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i].Before(axis[j]) })

	return axis
}

// totalOn aggregates net worth as of the given day: assets dated on or
// before the day, plus bank accounts opened by the day (initial balance for
// historical days, current balance from today forward), minus included
// liabilities created by the day.
func totalOn(day, today time.Time, assets []*domain.Asset, bankAccounts []*domain.BankAccount, liabilities []*domain.Liability) decimal.Decimal {
	total := decimal.Zero

	for _, a := range assets {
		if assetDay, ok := a.EffectiveDay(); ok && !assetDay.After(day) {
			total = total.Add(a.Value)
		}
	}

	for _, b := range bankAccounts {
		total = total.Add(b.BalanceOn(day, today))
	}

	for _, l := range liabilities {
		if l.CountsOn(day) {
			total = total.Sub(l.Balance)
		}
	}

	return total
}

// upsertSnapshot writes one (user, day, total) row, reusing any existing
// same-day row and normalizing its stored date back to midnight. Each day
// is persisted immediately; a failure surfaces to the caller and rows
// already written in this run stay in place.
func (uc *NetWorthUseCase) upsertSnapshot(ctx context.Context, userID string, day time.Time, total decimal.Decimal) (*domain.Snapshot, error) {
	existing, err := uc.snapshotRepo.FindByUserAndDay(ctx, userID, day)
	if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("find snapshot for %s: %w", day.Format("2006-01-02"), err)
	}

	if existing != nil {
		existing.SnapshotDate = day
		existing.Total = total
		if err := uc.snapshotRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update snapshot for %s: %w", day.Format("2006-01-02"), err)
		}
		return existing, nil
	}

	snapshot := &domain.Snapshot{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		SnapshotDate: day,
		Total:        total,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("create snapshot for %s: %w", day.Format("2006-01-02"), err)
	}

	return snapshot, nil
}

// mergeFreshAsset merges a just-written asset into the loaded set by ID,
// replacing a stale copy or appending a row the read missed.
func mergeFreshAsset(assets []*domain.Asset, fresh *domain.Asset) []*domain.Asset {
	if fresh == nil {
		return assets
	}

	for i, a := range assets {
		if a.ID == fresh.ID {
			assets[i] = fresh
			return assets
		}
	}

	return append(assets, fresh)
}

// ListSnapshots returns a user's snapshot series ordered by date ascending.
// Reads go through the cache when one is configured; syncs invalidate it.
func (uc *NetWorthUseCase) ListSnapshots(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, snapshotCacheKey(userID)); err == nil && data != nil {
			var cached []*domain.Snapshot
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	snapshots, err := uc.snapshotRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(snapshots); err == nil {
			_ = uc.cache.Set(ctx, snapshotCacheKey(userID), data, SnapshotCacheTTL)
		}
	}

	return snapshots, nil
}

// Recalculate forces a synchronization run without a triggering mutation.
func (uc *NetWorthUseCase) Recalculate(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	return uc.Sync(ctx, userID, nil)
}

// ClearSnapshots deletes every snapshot for a user. Administrative reset;
// bypasses the zero-record termination check.
func (uc *NetWorthUseCase) ClearSnapshots(ctx context.Context, userID string) error {
	if err := uc.snapshotRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	uc.invalidateCache(ctx, userID)
	return nil
}

func (uc *NetWorthUseCase) invalidateCache(ctx context.Context, userID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, snapshotCacheKey(userID))
	}
}

func snapshotCacheKey(userID string) string {
	return "snapshots:" + userID
}
