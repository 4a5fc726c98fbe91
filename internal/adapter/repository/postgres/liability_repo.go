package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/networth/internal/domain"
)

// LiabilityRepository implements usecase.LiabilityRepository.
type LiabilityRepository struct {
	pool *pgxpool.Pool
}

// NewLiabilityRepository creates a new LiabilityRepository.
func NewLiabilityRepository(pool *pgxpool.Pool) *LiabilityRepository {
	return &LiabilityRepository{pool: pool}
}

// Create inserts a new liability.
func (r *LiabilityRepository) Create(ctx context.Context, liability *domain.Liability) error {
	query := `
		INSERT INTO liabilities (id, user_id, name, category, balance, interest_rate, institution,
			monthly_payment, remaining_months, include_in_net_worth, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		liability.ID,
		liability.UserID,
		liability.Name,
		liability.Category,
		decimalToNumeric(liability.Balance),
		nullableNumeric(liability.InterestRate),
		liability.Institution,
		nullableNumeric(liability.MonthlyPayment),
		liability.RemainingMonths,
		liability.IncludeInNetWorth,
		liability.Notes,
		timeToPgTimestamptz(liability.CreatedAt),
	)

	return err
}

// GetByID retrieves a liability by ID.
func (r *LiabilityRepository) GetByID(ctx context.Context, id string) (*domain.Liability, error) {
	liability, err := scanLiability(r.pool.QueryRow(ctx, selectLiabilitySQL+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLiabilityNotFound
	}

	return liability, err
}

// Update updates a liability.
func (r *LiabilityRepository) Update(ctx context.Context, liability *domain.Liability) error {
	query := `
		UPDATE liabilities
		SET name = $2, category = $3, balance = $4, interest_rate = $5, institution = $6,
			monthly_payment = $7, remaining_months = $8, include_in_net_worth = $9, notes = $10
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		liability.ID,
		liability.Name,
		liability.Category,
		decimalToNumeric(liability.Balance),
		nullableNumeric(liability.InterestRate),
		liability.Institution,
		nullableNumeric(liability.MonthlyPayment),
		liability.RemainingMonths,
		liability.IncludeInNetWorth,
		liability.Notes,
	)

	return err
}

// Delete deletes a liability.
func (r *LiabilityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM liabilities WHERE id = $1`, id)
	return err
}

// ListByUser retrieves all liabilities owned by a user.
func (r *LiabilityRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Liability, error) {
	rows, err := r.pool.Query(ctx, selectLiabilitySQL+` WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var liabilities []*domain.Liability
	for rows.Next() {
		liability, err := scanLiability(rows)
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, liability)
	}

	return liabilities, rows.Err()
}

const selectLiabilitySQL = `
	SELECT id, user_id, name, category, balance, interest_rate, institution,
		monthly_payment, remaining_months, include_in_net_worth, notes, created_at
	FROM liabilities
`

func scanLiability(row pgx.Row) (*domain.Liability, error) {
	var (
		liability      domain.Liability
		balance        pgtype.Numeric
		interestRate   pgtype.Numeric
		monthlyPayment pgtype.Numeric
		createdAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&liability.ID,
		&liability.UserID,
		&liability.Name,
		&liability.Category,
		&balance,
		&interestRate,
		&liability.Institution,
		&monthlyPayment,
		&liability.RemainingMonths,
		&liability.IncludeInNetWorth,
		&liability.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	liability.Balance = numericToDecimal(balance)
	liability.InterestRate = numericToDecimalPtr(interestRate)
	liability.MonthlyPayment = numericToDecimalPtr(monthlyPayment)
	liability.CreatedAt = createdAt.Time

	return &liability, nil
}
