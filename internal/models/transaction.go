package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes entries that increase the amount owed to a
// transporter (DEBIT, e.g. a freight cost) from entries that decrease it
// (CREDIT, e.g. a payment made).
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// TransactionStatus is the approval state of a transaction. Only APPROVED
// transactions affect balance computations.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

// Transaction represents a single immutable financial event belonging to one
// transporter account.
type Transaction struct {
	ID              uuid.UUID         `json:"id" db:"transaction_id"`
	AccountID       uuid.UUID         `json:"account_id" db:"account_id"`
	Date            time.Time         `json:"date" db:"transaction_date"` // date-only semantics, time of day is not significant
	Type            TransactionType   `json:"type" db:"transaction_type"`
	Amount          decimal.Decimal   `json:"amount" db:"amount"`
	Description     string            `json:"description" db:"description"`
	Status          TransactionStatus `json:"status" db:"status"`
	ApprovedBy      *uuid.UUID        `json:"approved_by,omitempty" db:"approved_by"`
	RejectedBy      *uuid.UUID        `json:"rejected_by,omitempty" db:"rejected_by"`
	RejectionReason *string           `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}
