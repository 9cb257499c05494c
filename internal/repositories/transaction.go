package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByAccount returns the complete transaction history for one account in
// insertion order. The ledger engine expects the full materialized list.
func (r *TransactionReadRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	const query = `
		SELECT transaction_id, account_id, transaction_date, transaction_type,
		       amount, description, status, approved_by, rejected_by,
		       rejection_reason, created_at, updated_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at, transaction_id
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// GetByID returns one transaction, or nil if it does not exist.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	const query = `
		SELECT transaction_id, account_id, transaction_date, transaction_type,
		       amount, description, status, approved_by, rejected_by,
		       rejection_reason, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", txn,
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new transaction and returns its generated id.
func (r *TransactionWriteRepository) Save(
	ctx context.Context,
	accountID uuid.UUID,
	date time.Time,
	txType models.TransactionType,
	amount decimal.Decimal,
	description string,
	status models.TransactionStatus,
) (uuid.UUID, error) {
	const query = `
		INSERT INTO transactions (transaction_id, account_id, transaction_date,
		    transaction_type, amount, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING transaction_id
	`
	args := []any{uuid.New(), accountID, date, txType, amount, description, status}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Approve marks a pending transaction approved. The WHERE clause enforces
// the one-way state machine: rows already approved or rejected never match,
// and sql.ErrNoRows is returned.
func (r *TransactionWriteRepository) Approve(ctx context.Context, transactionID, approvedBy uuid.UUID) error {
	const query = `
		UPDATE transactions
		SET status = 'APPROVED', approved_by = $2, updated_at = NOW()
		WHERE transaction_id = $1 AND status = 'PENDING'
		RETURNING transaction_id
	`
	args := []any{transactionID, approvedBy}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return err
}

// Reject marks a pending transaction rejected with a reason. Same state
// machine enforcement as Approve.
func (r *TransactionWriteRepository) Reject(ctx context.Context, transactionID, rejectedBy uuid.UUID, reason string) error {
	const query = `
		UPDATE transactions
		SET status = 'REJECTED', rejected_by = $2, rejection_reason = $3, updated_at = NOW()
		WHERE transaction_id = $1 AND status = 'PENDING'
		RETURNING transaction_id
	`
	args := []any{transactionID, rejectedBy, reason}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return err
}

// Delete removes a transaction entirely. Returns sql.ErrNoRows when the
// transaction does not exist.
func (r *TransactionWriteRepository) Delete(ctx context.Context, transactionID uuid.UUID) error {
	const query = `
		DELETE FROM transactions
		WHERE transaction_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, transactionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
