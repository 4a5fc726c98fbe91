package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetTypeBankAccount marks the shadow asset row created alongside a bank
// account. Assets of this type are excluded from asset aggregation because
// bank accounts are aggregated from their own table.
const AssetTypeBankAccount = "Bank Account"

// Asset represents a valued holding as of a specific date.
type Asset struct {
	ID        string
	UserID    string
	Type      string
	Name      string
	Value     decimal.Decimal
	Currency  string
	Date      string
	CreatedAt time.Time
}

// IsShadow reports whether the asset is a bank account companion row.
func (a *Asset) IsShadow() bool {
	return a.Type == AssetTypeBankAccount
}

// EffectiveDay returns the calendar day the asset contributes from.
// ok is false when the stored date string does not parse; such assets are
// skipped from the date axis and never appear in any total.
func (a *Asset) EffectiveDay() (time.Time, bool) {
	return ParseDay(a.Date)
}
