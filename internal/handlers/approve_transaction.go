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

// ApproveTokener defines only the methods needed by this handler.
type ApproveTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionApprover defines the interface that the service must implement.
type TransactionApprover interface {
	Approve(ctx context.Context, transactionID, approvedBy uuid.UUID) (*models.Transaction, error)
}

// ApproveTransactionResponse represents a successful approval response
// swagger:model ApproveTransactionResponse
type ApproveTransactionResponse struct {
	// Success message
	// default: Transaction approved
	Message string `json:"message"`

	// Approved transaction
	Transaction *models.Transaction `json:"transaction"`
}

// NewApproveTransactionHandler returns an HTTP handler approving a pending
// transaction. Admin only; approved transactions start counting toward the
// account balance.
// @Summary Approve a pending transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.ApproveTransactionResponse "Transaction approved"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Admin role required"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.TransactionErrorResponse "Transaction is not pending"
// @Router /transactions/{transactionID}/approve [post]
// @Security BearerAuth
func NewApproveTransactionHandler(
	svc TransactionApprover,
	tokenGetter ApproveTokener,
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

		txn, err := svc.Approve(ctx, transactionID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrInvalidTransition):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction is not pending"})
			default:
				logger.Log.Errorw("failed to approve transaction", "transactionID", transactionID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ApproveTransactionResponse{
			Message:     "Transaction approved",
			Transaction: txn,
		})
	}
}
