package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, accountID uuid.UUID, date time.Time, txType models.TransactionType,
		amount decimal.Decimal, description string) (*models.Transaction, error)
}

// CreateTransactionRequest represents the JSON body for recording a transaction
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Transaction date (YYYY-MM-DD)
	// required: true
	// default: 2024-01-05
	Date string `json:"date"`

	// DEBIT (cost) or CREDIT (payment)
	// required: true
	// default: DEBIT
	Type models.TransactionType `json:"type"`

	// Non-negative amount
	// required: true
	// default: 1500.00
	Amount decimal.Decimal `json:"amount"`

	// Free-text description
	// default: freight Pune-Nashik
	Description string `json:"description"`
}

// CreateTransactionResponse represents a successful transaction creation response
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Created transaction; debits come back approved, credits pending
	Transaction *models.Transaction `json:"transaction"`
}

// TransactionErrorResponse represents an error response for transaction operations
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Invalid amount or date
	Error string `json:"error"`
}

// NewCreateTransactionHandler returns an HTTP handler recording a transaction
// against a transporter account. Cost entries (DEBIT) are auto-approved;
// payment entries (CREDIT) await admin approval.
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body handlers.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Account not found"
// @Router /accounts/{accountID}/transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid account id"})
			return
		}

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Type != models.Debit && req.Type != models.Credit {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Type must be DEBIT or CREDIT"})
			return
		}

		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}

		txn, err := svc.Create(r.Context(), accountID, date, req.Type, req.Amount, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrMissingDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid amount or date"})
			default:
				logger.Log.Errorw("failed to create transaction", "accountID", accountID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTransactionResponse{Transaction: txn})
	}
}
