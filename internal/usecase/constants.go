package usecase

import "time"

const (
	// SnapshotCacheTTL bounds staleness of cached snapshot reads; every
	// synchronizer run invalidates the cache eagerly anyway.
	SnapshotCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
