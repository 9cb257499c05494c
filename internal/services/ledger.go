package services

import (
	"context"

	"github.com/avasekar/transport-ledger/internal/ledger"
	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
)

// TransactionLister returns the full transaction history of one account.
type TransactionLister interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
}

// BalanceCache caches computed balance snapshots.
type BalanceCache interface {
	Get(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error)
	Set(ctx context.Context, accountID uuid.UUID, snapshot models.BalanceSnapshot) error
}

// LedgerService answers balance and ledger queries. Computation is delegated
// to the pure engine in the ledger package; this service only fetches a
// fresh transaction snapshot per call and caches aggregate balances.
type LedgerService struct {
	lister   TransactionLister
	accounts AccountGetter
	cache    BalanceCache
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(lister TransactionLister, accounts AccountGetter, cache BalanceCache) *LedgerService {
	return &LedgerService{
		lister:   lister,
		accounts: accounts,
		cache:    cache,
	}
}

func (s *LedgerService) requireAccount(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to load account", "accountID", accountID, "error", err)
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	return nil
}

// GetBalance returns the aggregate balance snapshot for an account,
// serving from cache when possible. Cache failures fall through to a full
// recompute; a balance read never fails because Redis is down.
func (s *LedgerService) GetBalance(ctx context.Context, accountID uuid.UUID) (models.BalanceSnapshot, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return models.BalanceSnapshot{}, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, accountID)
		if err != nil {
			logger.Log.Errorw("balance cache read failed", "accountID", accountID, "error", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	txns, err := s.lister.ListByAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "accountID", accountID, "error", err)
		return models.BalanceSnapshot{}, err
	}

	snapshot, err := ledger.ComputeAccountBalance(txns)
	if err != nil {
		logger.Log.Errorw("balance computation failed", "accountID", accountID, "error", err)
		return models.BalanceSnapshot{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, accountID, snapshot); err != nil {
			logger.Log.Errorw("balance cache write failed", "accountID", accountID, "error", err)
		}
	}

	return snapshot, nil
}

// GetLedger builds the windowed running-balance ledger for an account from
// a freshly fetched transaction snapshot.
func (s *LedgerService) GetLedger(ctx context.Context, accountID uuid.UUID, filter models.LedgerFilter) (models.Ledger, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return models.Ledger{}, err
	}

	txns, err := s.lister.ListByAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "accountID", accountID, "error", err)
		return models.Ledger{}, err
	}

	result, err := ledger.BuildLedger(txns, filter)
	if err != nil {
		logger.Log.Errorw("ledger computation failed", "accountID", accountID, "error", err)
		return models.Ledger{}, err
	}

	return result, nil
}

// ListTransactions returns the filtered transaction rows for an account
// without the running-balance bookkeeping.
func (s *LedgerService) ListTransactions(ctx context.Context, accountID uuid.UUID, filter models.LedgerFilter) ([]models.Transaction, error) {
	result, err := s.GetLedger(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(result.Rows))
	for _, row := range result.Rows {
		txns = append(txns, row.Transaction)
	}
	return txns, nil
}
