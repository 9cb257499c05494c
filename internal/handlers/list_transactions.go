package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TransactionListGetter defines the interface that the service must implement.
type TransactionListGetter interface {
	ListTransactions(ctx context.Context, accountID uuid.UUID, filter models.LedgerFilter) ([]models.Transaction, error)
}

// ListTransactionsResponse represents the filtered transaction history of an account
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	// Transactions sorted by date, insertion order breaking ties
	Transactions []models.Transaction `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler listing an account's
// transactions, optionally windowed by date and narrowed by type or status.
// @Summary List account transactions
// @Tags transactions
// @Produce json
// @Param accountID path string true "Account ID"
// @Param date_from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param type query string false "DEBIT or CREDIT"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Account not found"
// @Router /accounts/{accountID}/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid account id"})
			return
		}

		filter, err := parseLedgerFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			return
		}

		txns, err := svc.ListTransactions(r.Context(), accountID, filter)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to list transactions", "accountID", accountID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Transactions: txns})
	}
}
