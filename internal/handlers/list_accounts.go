package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
)

// AccountListGetter defines the interface that the service must implement.
type AccountListGetter interface {
	List(ctx context.Context) ([]models.Account, error)
}

// ListAccountsResponse represents the transporter account listing
// swagger:model ListAccountsResponse
type ListAccountsResponse struct {
	// Transporter accounts
	Accounts []models.Account `json:"accounts"`
}

// NewListAccountsHandler returns an HTTP handler listing all transporter accounts.
// @Summary List transporter accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.ListAccountsResponse "Accounts"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AccountErrorResponse "Internal server error"
// @Router /accounts [get]
// @Security BearerAuth
func NewListAccountsHandler(svc AccountListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListAccountsResponse{Accounts: accounts})
	}
}
