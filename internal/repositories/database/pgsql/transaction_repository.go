package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendtrack/expense_tracker_app/internal/apperrors"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/spendtrack/expense_tracker_app/internal/core/ports/repositories"
)

// PgxTransactionRepository persists transactions in PostgreSQL. Rows are
// scanned straight into the canonical domain shape so no storage-specific
// field naming survives past this boundary.
type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, owner_id, kind, amount, description, category, occurred_on, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.OwnerID,
		&txn.Kind,
		&txn.Amount,
		&txn.Description,
		&txn.Category,
		&txn.OccurredOn,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	return txn, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, owner_id, kind, amount, description, category, occurred_on, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.OwnerID,
		string(txn.Kind),
		txn.Amount,
		txn.Description,
		txn.Category,
		txn.OccurredOn,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`, transactionColumns)

	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := buildTransactionPredicate(ownerID, filter)

	// seq is a monotonically increasing bigserial, so equal dates keep
	// insertion order and pagination stays deterministic.
	query := fmt.Sprintf(`
        SELECT %s
        FROM transactions
        WHERE %s
        ORDER BY occurred_on DESC, seq ASC;
    `, transactionColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET kind = $1, amount = $2, description = $3, category = $4, occurred_on = $5, last_updated_at = $6
        WHERE transaction_id = $7 AND owner_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		string(txn.Kind),
		txn.Amount,
		txn.Description,
		txn.Category,
		txn.OccurredOn,
		txn.LastUpdatedAt,
		txn.TransactionID,
		txn.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	query := `
        DELETE FROM transactions
        WHERE transaction_id = $1 AND owner_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Already gone (or never this owner's): the caller must see that
		// nothing happened.
		return apperrors.ErrNotFound
	}
	return nil
}
