package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when the referenced transporter account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound is returned when the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidTransition is returned on an approve/reject of a transaction that is not pending.
	ErrInvalidTransition = errors.New("transaction is not pending")
	// ErrInvalidAmount is returned when a transaction amount is negative.
	ErrInvalidAmount = errors.New("amount must be non-negative")
	// ErrMissingDate is returned when a transaction has no date.
	ErrMissingDate = errors.New("transaction date is required")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("rejection reason is required")
)

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, accountID uuid.UUID, date time.Time, txType models.TransactionType,
		amount decimal.Decimal, description string, status models.TransactionStatus) (uuid.UUID, error)
	Approve(ctx context.Context, transactionID, approvedBy uuid.UUID) error
	Reject(ctx context.Context, transactionID, rejectedBy uuid.UUID, reason string) error
	Delete(ctx context.Context, transactionID uuid.UUID) error
}

// TransactionGetter defines read operations for single transactions.
type TransactionGetter interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
}

// AccountGetter defines read operations for single accounts.
type AccountGetter interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// BalanceInvalidator drops cached balance snapshots for an account.
type BalanceInvalidator interface {
	Invalidate(ctx context.Context, accountID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService manages the transaction lifecycle: creation with the
// cost/payment approval split, the one-way pending->approved/rejected state
// machine, and deletion. Every mutation invalidates the account's cached
// balance and publishes an event to Kafka.
type TransactionService struct {
	writer      TransactionWriter
	getter      TransactionGetter
	accounts    AccountGetter
	cache       BalanceInvalidator
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writer TransactionWriter,
	getter TransactionGetter,
	accounts AccountGetter,
	cache BalanceInvalidator,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		writer:      writer,
		getter:      getter,
		accounts:    accounts,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a transaction event to Kafka. Best-effort: failures
// are logged and never fail the calling operation.
func (s *TransactionService) publishEvent(ctx context.Context, event models.TransactionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published to Kafka", "transaction_id", event.TransactionID, "event_type", event.EventType)
	}
}

// invalidateBalance drops the cached balance snapshot for an account.
// Best-effort: the next balance read recomputes from the database anyway.
func (s *TransactionService) invalidateBalance(ctx context.Context, accountID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, accountID); err != nil {
		logger.Log.Errorw("failed to invalidate balance cache", "accountID", accountID, "error", err)
	}
}

// Create records a new transaction for an account. Debit entries (costs)
// are auto-approved; credit entries (payments) start pending and need an
// admin to approve them.
func (s *TransactionService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	date time.Time,
	txType models.TransactionType,
	amount decimal.Decimal,
	description string,
) (*models.Transaction, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to load account", "accountID", accountID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	status := models.StatusPending
	if txType == models.Debit {
		status = models.StatusApproved
	}

	id, err := s.writer.Save(ctx, accountID, date, txType, amount, description, status)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "accountID", accountID, "error", err)
		return nil, err
	}

	s.invalidateBalance(ctx, accountID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventType:     models.EventTransactionCreated,
		TransactionID: id.String(),
		AccountID:     accountID.String(),
		Type:          string(txType),
		Amount:        amount.String(),
		Status:        string(status),
		Timestamp:     time.Now().Unix(),
	})

	txn, err := s.getter.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to reload transaction", "transactionID", id, "error", err)
		return nil, err
	}
	return txn, nil
}

// Approve transitions a pending transaction to approved, recording the
// approver. Approved and rejected transactions are terminal.
func (s *TransactionService) Approve(ctx context.Context, transactionID, approvedBy uuid.UUID) (*models.Transaction, error) {
	txn, err := s.getter.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "transactionID", transactionID, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	if txn.Status != models.StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.writer.Approve(ctx, transactionID, approvedBy); err != nil {
		if err == sql.ErrNoRows {
			// lost the race against a concurrent transition
			return nil, ErrInvalidTransition
		}
		logger.Log.Errorw("failed to approve transaction", "transactionID", transactionID, "error", err)
		return nil, err
	}

	s.invalidateBalance(ctx, txn.AccountID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventType:     models.EventTransactionApproved,
		TransactionID: transactionID.String(),
		AccountID:     txn.AccountID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		Status:        string(models.StatusApproved),
		Timestamp:     time.Now().Unix(),
	})

	return s.getter.GetByID(ctx, transactionID)
}

// Reject transitions a pending transaction to rejected. A reason is
// mandatory; rejected transactions never affect balances.
func (s *TransactionService) Reject(ctx context.Context, transactionID, rejectedBy uuid.UUID, reason string) (*models.Transaction, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	txn, err := s.getter.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "transactionID", transactionID, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	if txn.Status != models.StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.writer.Reject(ctx, transactionID, rejectedBy, reason); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidTransition
		}
		logger.Log.Errorw("failed to reject transaction", "transactionID", transactionID, "error", err)
		return nil, err
	}

	s.invalidateBalance(ctx, txn.AccountID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventType:     models.EventTransactionRejected,
		TransactionID: transactionID.String(),
		AccountID:     txn.AccountID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		Status:        string(models.StatusRejected),
		Timestamp:     time.Now().Unix(),
	})

	return s.getter.GetByID(ctx, transactionID)
}

// Delete removes a transaction entirely. There is no soft delete.
func (s *TransactionService) Delete(ctx context.Context, transactionID uuid.UUID) error {
	txn, err := s.getter.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "transactionID", transactionID, "error", err)
		return err
	}
	if txn == nil {
		return ErrTransactionNotFound
	}

	if err := s.writer.Delete(ctx, transactionID); err != nil {
		if err == sql.ErrNoRows {
			return ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to delete transaction", "transactionID", transactionID, "error", err)
		return err
	}

	s.invalidateBalance(ctx, txn.AccountID)
	return nil
}
