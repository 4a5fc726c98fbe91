package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/networth/internal/domain"
)

// SnapshotRepository implements usecase.SnapshotRepository. Rows here are
// derived state owned entirely by the synchronizer.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Create inserts a new snapshot.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *domain.Snapshot) error {
	query := `
		INSERT INTO net_worth_snapshots (id, user_id, snapshot_date, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		snapshot.ID,
		snapshot.UserID,
		timeToPgTimestamptz(snapshot.SnapshotDate),
		decimalToNumeric(snapshot.Total),
		timeToPgTimestamptz(snapshot.CreatedAt),
	)

	return err
}

// Update rewrites a snapshot's total and normalizes its stored date.
func (r *SnapshotRepository) Update(ctx context.Context, snapshot *domain.Snapshot) error {
	query := `
		UPDATE net_worth_snapshots
		SET snapshot_date = $2, total = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		snapshot.ID,
		timeToPgTimestamptz(snapshot.SnapshotDate),
		decimalToNumeric(snapshot.Total),
	)

	return err
}

// FindByUserAndDay matches any snapshot stored within the given calendar
// day. The range match tolerates time-of-day drift in rows written before
// dates were normalized to midnight.
func (r *SnapshotRepository) FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*domain.Snapshot, error) {
	query := `
		SELECT id, user_id, snapshot_date, total, created_at
		FROM net_worth_snapshots
		WHERE user_id = $1 AND snapshot_date >= $2 AND snapshot_date < $3
		LIMIT 1
	`

	day = domain.DayOf(day)
	next := day.Add(24 * time.Hour)

	snapshot, err := scanSnapshot(r.pool.QueryRow(ctx, query, userID, timeToPgTimestamptz(day), timeToPgTimestamptz(next)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}

	return snapshot, err
}

// ListByUser retrieves a user's snapshots ordered by date ascending.
func (r *SnapshotRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Snapshot, error) {
	query := `
		SELECT id, user_id, snapshot_date, total, created_at
		FROM net_worth_snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteByUser removes every snapshot owned by a user.
func (r *SnapshotRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM net_worth_snapshots WHERE user_id = $1`, userID)
	return err
}

func scanSnapshot(row pgx.Row) (*domain.Snapshot, error) {
	var (
		snapshot     domain.Snapshot
		snapshotDate pgtype.Timestamptz
		total        pgtype.Numeric
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshotDate,
		&total,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.SnapshotDate = snapshotDate.Time
	snapshot.Total = numericToDecimal(total)
	snapshot.CreatedAt = createdAt.Time

	return &snapshot, nil
}
