package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AccountReadRepository handles transporter account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// List returns all transporter accounts ordered by name.
func (r *AccountReadRepository) List(ctx context.Context) ([]models.Account, error) {
	const query = `
		SELECT account_id, name, phone, created_at, updated_at
		FROM accounts
		ORDER BY name
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByID returns one account, or nil if it does not exist.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	const query = `
		SELECT account_id, name, phone, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// AccountWriteRepository handles transporter account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new transporter account and returns its generated id.
func (r *AccountWriteRepository) Save(ctx context.Context, name, phone string) (uuid.UUID, error) {
	const query = `
		INSERT INTO accounts (account_id, name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING account_id
	`
	args := []any{uuid.New(), name, phone}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}
