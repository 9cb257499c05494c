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

// DeleteTokener defines only the methods needed by this handler.
type DeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, transactionID uuid.UUID) error
}

// DeleteTransactionResponse represents a successful deletion response
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct {
	// Success message
	// default: Transaction deleted
	Message string `json:"message"`
}

// NewDeleteTransactionHandler returns an HTTP handler removing a transaction.
// Admin only; the row is removed entirely, not tombstoned.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.DeleteTransactionResponse "Transaction deleted"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TransactionErrorResponse "Admin role required"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{transactionID} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(
	svc TransactionDeleter,
	tokenGetter DeleteTokener,
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

		if err := svc.Delete(ctx, transactionID); err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to delete transaction", "transactionID", transactionID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteTransactionResponse{Message: "Transaction deleted"})
	}
}
