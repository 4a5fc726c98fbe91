package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
)

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// AssetFromDomain converts domain asset to response.
func AssetFromDomain(a *domain.Asset) *AssetResponse {
	return &AssetResponse{
		ID:        a.ID,
		Type:      a.Type,
		Name:      a.Name,
		Value:     a.Value,
		Currency:  a.Currency,
		Date:      a.Date,
		CreatedAt: a.CreatedAt,
	}
}

// AssetsFromDomain converts domain assets to responses.
func AssetsFromDomain(assets []*domain.Asset) []*AssetResponse {
	result := make([]*AssetResponse, len(assets))
	for i, a := range assets {
		result[i] = AssetFromDomain(a)
	}
	return result
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	InitialDate    time.Time       `json:"initial_date"`
	AssetID        string          `json:"asset_id"`
}

// BankAccountFromDomain converts domain bank account to response.
func BankAccountFromDomain(b *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:             b.ID,
		Name:           b.Name,
		InitialBalance: b.InitialBalance,
		CurrentBalance: b.CurrentBalance,
		Currency:       b.Currency,
		InitialDate:    b.InitialDate,
		AssetID:        b.AssetID,
	}
}

// BankAccountsFromDomain converts domain bank accounts to responses.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, b := range accounts {
		result[i] = BankAccountFromDomain(b)
	}
	return result
}

// LiabilityResponse represents a liability in API responses.
type LiabilityResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Balance           decimal.Decimal  `json:"balance"`
	InterestRate      *decimal.Decimal `json:"interest_rate,omitempty"`
	Institution       string           `json:"institution,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthly_payment,omitempty"`
	RemainingMonths   *int             `json:"remaining_months,omitempty"`
	IncludeInNetWorth bool             `json:"include_in_net_worth"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// LiabilityFromDomain converts domain liability to response.
func LiabilityFromDomain(l *domain.Liability) *LiabilityResponse {
	return &LiabilityResponse{
		ID:                l.ID,
		Name:              l.Name,
		Category:          l.Category,
		Balance:           l.Balance,
		InterestRate:      l.InterestRate,
		Institution:       l.Institution,
		MonthlyPayment:    l.MonthlyPayment,
		RemainingMonths:   l.RemainingMonths,
		IncludeInNetWorth: l.IncludeInNetWorth,
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
	}
}

// LiabilitiesFromDomain converts domain liabilities to responses.
func LiabilitiesFromDomain(liabilities []*domain.Liability) []*LiabilityResponse {
	result := make([]*LiabilityResponse, len(liabilities))
	for i, l := range liabilities {
		result[i] = LiabilityFromDomain(l)
	}
	return result
}

// SnapshotResponse represents a net-worth snapshot in API responses.
type SnapshotResponse struct {
	ID           string          `json:"id"`
	SnapshotDate string          `json:"snapshot_date"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SnapshotFromDomain converts domain snapshot to response.
func SnapshotFromDomain(s *domain.Snapshot) *SnapshotResponse {
	return &SnapshotResponse{
		ID:           s.ID,
		SnapshotDate: s.SnapshotDate.Format("2006-01-02"),
		Total:        s.Total,
		CreatedAt:    s.CreatedAt,
	}
}

// SnapshotsFromDomain converts domain snapshots to responses.
func SnapshotsFromDomain(snapshots []*domain.Snapshot) []*SnapshotResponse {
	result := make([]*SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		result[i] = SnapshotFromDomain(s)
	}
	return result
}

// ListSnapshotsResponse wraps a snapshot list.
type ListSnapshotsResponse struct {
	Snapshots []*SnapshotResponse `json:"snapshots"`
	Total     int                 `json:"total"`
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
