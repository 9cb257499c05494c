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

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (models.BalanceSnapshot, error)
}

// BalanceResponse represents the aggregate balance of an account
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Sum of approved debits
	// default: 15000.00
	TotalDebits string `json:"total_debits"`

	// Sum of approved credits
	// default: 9000.00
	TotalCredits string `json:"total_credits"`

	// Net balance; positive means the business owes the transporter
	// default: 6000.00
	Balance string `json:"balance"`
}

// BalanceErrorResponse represents an error response for balance queries
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Account not found
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for the aggregate account balance.
// Only approved transactions count; pending and rejected entries are ignored.
// @Summary Get account balance
// @Tags ledger
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.BalanceResponse "Account balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account not found"
// @Router /accounts/{accountID}/balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Invalid account id"})
			return
		}

		snapshot, err := svc.GetBalance(r.Context(), accountID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to get balance", "accountID", accountID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			TotalDebits:  snapshot.TotalDebits.StringFixed(2),
			TotalCredits: snapshot.TotalCredits.StringFixed(2),
			Balance:      snapshot.Balance.StringFixed(2),
		})
	}
}
