package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability represents a debt. Only liabilities with IncludeInNetWorth set
// reduce net worth; the flag toggles the effect without deleting the record.
type Liability struct {
	ID                string
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
	CreatedAt         time.Time
}

// CountsOn reports whether the liability reduces the total for the given
// calendar day. Historical inclusion is cut off by the creation timestamp,
// not a user-specified effective date.
func (l *Liability) CountsOn(day time.Time) bool {
	return l.IncludeInNetWorth && !DayOf(l.CreatedAt).After(day)
}
