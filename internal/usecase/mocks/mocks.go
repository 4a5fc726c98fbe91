package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
)

// MockAssetRepository is a mock implementation of AssetRepository.
type MockAssetRepository struct {
	mu     sync.RWMutex
	assets map[string]*domain.Asset

	CreateFunc     func(ctx context.Context, asset *domain.Asset) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Asset, error)
	UpdateFunc     func(ctx context.Context, asset *domain.Asset) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Asset, error)
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{
		assets: make(map[string]*domain.Asset),
	}
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, asset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[asset.ID] = asset
	return nil
}

func (m *MockAssetRepository) CreateTx(ctx context.Context, tx usecase.Transaction, asset *domain.Asset) error {
	return m.Create(ctx, asset)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.assets[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAssetNotFound
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, asset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[asset.ID]; !ok {
		return domain.ErrAssetNotFound
	}
	m.assets[asset.ID] = asset
	return nil
}

func (m *MockAssetRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, id)
	return nil
}

func (m *MockAssetRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	return m.Delete(ctx, id)
}

func (m *MockAssetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Asset, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var assets []*domain.Asset
	for _, a := range m.assets {
		if a.UserID == userID {
			assets = append(assets, a)
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].CreatedAt.Before(assets[j].CreatedAt) })
	return assets, nil
}

// MockBankAccountRepository is a mock implementation of BankAccountRepository.
type MockBankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	CreateTxFunc       func(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.BankAccount, error)
	UpdateBalancesFunc func(ctx context.Context, id string, initial, current decimal.Decimal) error
	ListByUserFunc     func(ctx context.Context, userID string) ([]*domain.BankAccount, error)
}

func NewMockBankAccountRepository() *MockBankAccountRepository {
	return &MockBankAccountRepository{
		accounts: make(map[string]*domain.BankAccount),
	}
}

func (m *MockBankAccountRepository) CreateTx(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.UserID == account.UserID && existing.Name == account.Name {
			return domain.ErrBankAccountNameTaken
		}
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockBankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.accounts[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBankAccountNotFound
}

func (m *MockBankAccountRepository) UpdateBalances(ctx context.Context, id string, initial, current decimal.Decimal) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, id, initial, current)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.accounts[id]
	if !ok {
		return domain.ErrBankAccountNotFound
	}
	b.InitialBalance = initial
	b.CurrentBalance = current
	return nil
}

func (m *MockBankAccountRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

func (m *MockBankAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.BankAccount
	for _, b := range m.accounts {
		if b.UserID == userID {
			accounts = append(accounts, b)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// MockLiabilityRepository is a mock implementation of LiabilityRepository.
type MockLiabilityRepository struct {
	mu          sync.RWMutex
	liabilities map[string]*domain.Liability

	CreateFunc     func(ctx context.Context, liability *domain.Liability) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Liability, error)
	UpdateFunc     func(ctx context.Context, liability *domain.Liability) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Liability, error)
}

func NewMockLiabilityRepository() *MockLiabilityRepository {
	return &MockLiabilityRepository{
		liabilities: make(map[string]*domain.Liability),
	}
}

func (m *MockLiabilityRepository) Create(ctx context.Context, liability *domain.Liability) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, liability)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liabilities[liability.ID] = liability
	return nil
}

func (m *MockLiabilityRepository) GetByID(ctx context.Context, id string) (*domain.Liability, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.liabilities[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLiabilityNotFound
}

func (m *MockLiabilityRepository) Update(ctx context.Context, liability *domain.Liability) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, liability)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.liabilities[liability.ID]; !ok {
		return domain.ErrLiabilityNotFound
	}
	m.liabilities[liability.ID] = liability
	return nil
}

func (m *MockLiabilityRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.liabilities, id)
	return nil
}

func (m *MockLiabilityRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Liability, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var liabilities []*domain.Liability
	for _, l := range m.liabilities {
		if l.UserID == userID {
			liabilities = append(liabilities, l)
		}
	}
	sort.Slice(liabilities, func(i, j int) bool { return liabilities[i].ID < liabilities[j].ID })
	return liabilities, nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.Snapshot

	CreateFunc           func(ctx context.Context, snapshot *domain.Snapshot) error
	UpdateFunc           func(ctx context.Context, snapshot *domain.Snapshot) error
	FindByUserAndDayFunc func(ctx context.Context, userID string, day time.Time) (*domain.Snapshot, error)
	DeleteByUserFunc     func(ctx context.Context, userID string) error
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[string]*domain.Snapshot),
	}
}

func (m *MockSnapshotRepository) Create(ctx context.Context, snapshot *domain.Snapshot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapshot.ID] = snapshot
	return nil
}

func (m *MockSnapshotRepository) Update(ctx context.Context, snapshot *domain.Snapshot) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.snapshots[snapshot.ID]; !ok {
		return domain.ErrSnapshotNotFound
	}
	m.snapshots[snapshot.ID] = snapshot
	return nil
}

func (m *MockSnapshotRepository) FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*domain.Snapshot, error) {
	if m.FindByUserAndDayFunc != nil {
		return m.FindByUserAndDayFunc(ctx, userID, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.snapshots {
		if s.UserID == userID && domain.SameDay(s.SnapshotDate, day) {
			return s, nil
		}
	}
	return nil, domain.ErrSnapshotNotFound
}

func (m *MockSnapshotRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var snapshots []*domain.Snapshot
	for _, s := range m.snapshots {
		if s.UserID == userID {
			snapshots = append(snapshots, s)
		}
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].SnapshotDate.Before(snapshots[j].SnapshotDate) })
	return snapshots, nil
}

func (m *MockSnapshotRepository) DeleteByUser(ctx context.Context, userID string) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.snapshots {
		if s.UserID == userID {
			delete(m.snapshots, id)
		}
	}
	return nil
}

// MockSettingRepository is a mock implementation of SettingRepository.
type MockSettingRepository struct {
	mu       sync.RWMutex
	settings map[string]*domain.Setting

	UpsertFunc func(ctx context.Context, setting *domain.Setting) error
}

func NewMockSettingRepository() *MockSettingRepository {
	return &MockSettingRepository{
		settings: make(map[string]*domain.Setting),
	}
}

func (m *MockSettingRepository) FindByUserAndKey(ctx context.Context, userID, key string) (*domain.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.settings {
		if s.UserID == userID && s.Key == key {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, setting)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.settings {
		if s.UserID == setting.UserID && s.Key == setting.Key {
			delete(m.settings, id)
		}
	}
	m.settings[setting.ID] = setting
	return nil
}

func (m *MockSettingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var settings []*domain.Setting
	for _, s := range m.settings {
		if s.UserID == userID {
			settings = append(settings, s)
		}
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

// MockSnapshotSyncer is a mock implementation of SnapshotSyncer.
type MockSnapshotSyncer struct {
	mu    sync.Mutex
	calls []SyncCall

	SyncFunc func(ctx context.Context, userID string, fresh *domain.Asset) ([]*domain.Snapshot, error)
}

// SyncCall records a single Sync invocation.
type SyncCall struct {
	UserID string
	Fresh  *domain.Asset
}

func NewMockSnapshotSyncer() *MockSnapshotSyncer {
	return &MockSnapshotSyncer{}
}

func (m *MockSnapshotSyncer) Sync(ctx context.Context, userID string, fresh *domain.Asset) ([]*domain.Snapshot, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SyncCall{UserID: userID, Fresh: fresh})
	m.mu.Unlock()
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx, userID, fresh)
	}
	return nil, nil
}

// Calls returns all recorded Sync invocations.
func (m *MockSnapshotSyncer) Calls() []SyncCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SyncCall(nil), m.calls...)
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu   sync.Mutex
	last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &MockTransaction{}
	return m.last, nil
}

// Last returns the most recently begun transaction.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// SequentialIDGenerator generates deterministic IDs for tests.
type SequentialIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.prefix + "-" + strconv.Itoa(g.next)
}
