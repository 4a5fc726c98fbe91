package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// BankAccountRepository implements usecase.BankAccountRepository.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

// CreateTx inserts a new bank account inside an open transaction. The
// account row is only ever created together with its shadow asset.
func (r *BankAccountRepository) CreateTx(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount) error {
	pgxTx := txFrom(tx)

	query := `
		INSERT INTO bank_accounts (id, user_id, name, initial_balance, current_balance, currency, initial_date, asset_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		decimalToNumeric(account.InitialBalance),
		decimalToNumeric(account.CurrentBalance),
		account.Currency,
		timeToPgTimestamptz(account.InitialDate),
		account.AssetID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrBankAccountNameTaken
	}

	return err
}

// GetByID retrieves a bank account by ID.
func (r *BankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	query := `
		SELECT id, user_id, name, initial_balance, current_balance, currency, initial_date, asset_id
		FROM bank_accounts
		WHERE id = $1
	`

	account, err := scanBankAccount(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBankAccountNotFound
	}

	return account, err
}

// UpdateBalances updates an account's initial and current balances.
func (r *BankAccountRepository) UpdateBalances(ctx context.Context, id string, initial, current decimal.Decimal) error {
	query := `
		UPDATE bank_accounts
		SET initial_balance = $2, current_balance = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, decimalToNumeric(initial), decimalToNumeric(current))
	return err
}

// DeleteTx deletes a bank account inside an open transaction.
func (r *BankAccountRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := txFrom(tx)
	_, err := pgxTx.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	return err
}

// ListByUser retrieves all bank accounts owned by a user.
func (r *BankAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	query := `
		SELECT id, user_id, name, initial_balance, current_balance, currency, initial_date, asset_id
		FROM bank_accounts
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	var (
		account     domain.BankAccount
		initial     pgtype.Numeric
		current     pgtype.Numeric
		initialDate pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&initial,
		&current,
		&account.Currency,
		&initialDate,
		&account.AssetID,
	)
	if err != nil {
		return nil, err
	}

	account.InitialBalance = numericToDecimal(initial)
	account.CurrentBalance = numericToDecimal(current)
	account.InitialDate = initialDate.Time

	return &account, nil
}
