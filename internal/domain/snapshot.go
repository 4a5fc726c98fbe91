package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one persisted (user, day, total) net-worth aggregate. It is
// derived state: the synchronizer fully owns and regenerates these rows.
type Snapshot struct {
	ID           string
	UserID       string
	SnapshotDate time.Time
	Total        decimal.Decimal
	CreatedAt    time.Time
}
