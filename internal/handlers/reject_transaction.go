package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/jwt"
	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RejectTokener defines only the methods needed by this handler.
type RejectTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionRejecter defines the interface that the service must implement.
type TransactionRejecter interface {
	Reject(ctx context.Context, transactionID, rejectedBy uuid.UUID, reason string) (*models.Transaction, error)
}

// RejectTransactionRequest represents the JSON body for rejecting a transaction
// swagger:model RejectTransactionRequest
type RejectTransactionRequest struct {
	// Reason for rejection
	// required: true
	// default: duplicate entry
	Reason string `json:"reason"`
}

// RejectTransactionResponse represents a successful rejection response
// swagger:model RejectTransactionResponse
type RejectTransactionResponse struct {
	// Success message
	// default: Transaction rejected
	Message string `json:"message"`

	// Rejected transaction
	Transaction *models.Transaction `json:"transaction"`
}

// NewRejectTransactionHandler returns an HTTP handler rejecting a pending
// transaction with a mandatory reason. Admin only; rejected transactions
// never affect balances.
// @Summary Reject a pending transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.RejectTransactionRequest true "Reject Transaction Request"
// @Success 200 {object} handlers.RejectTransactionResponse "Transaction rejected"
// @Failure 400 {object} handlers.TransactionErrorResponse "Reason is required"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Admin role required"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.TransactionErrorResponse "Transaction is not pending"
// @Router /transactions/{transactionID}/reject [post]
// @Security BearerAuth
func NewRejectTransactionHandler(
	svc TransactionRejecter,
	tokenGetter RejectTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		if claims.Role != models.RoleAdmin {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Admin role required"})
			return
		}

		transactionID, err := uuid.Parse(chi.URLParam(r, "transactionID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req RejectTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Reject(ctx, transactionID, claims.UserID, req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReasonRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Reason is required"})
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrInvalidTransition):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction is not pending"})
			default:
				logger.Log.Errorw("failed to reject transaction", "transactionID", transactionID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RejectTransactionResponse{
			Message:     "Transaction rejected",
			Transaction: txn,
		})
	}
}
