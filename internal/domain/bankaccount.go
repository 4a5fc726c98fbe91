package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount represents a linked account. True balance history is not
// tracked; the account is approximated by two points: InitialBalance before
// today and CurrentBalance from today forward.
type BankAccount struct {
	ID             string
	UserID         string
	Name           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string
	InitialDate    time.Time
	AssetID        string
}

// BalanceOn returns the account's contribution for the given calendar day.
// Days before InitialDate contribute zero, historical days reconstruct the
// starting balance, today and later reflect the live balance.
func (b *BankAccount) BalanceOn(day, today time.Time) decimal.Decimal {
	if DayOf(b.InitialDate).After(day) {
		return decimal.Zero
	}
	if day.Before(DayOf(today)) {
		return b.InitialBalance
	}
	return b.CurrentBalance
}
