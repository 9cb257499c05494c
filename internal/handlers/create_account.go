package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
)

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	Create(ctx context.Context, name, phone string) (*models.Account, error)
}

// CreateAccountRequest represents the JSON body for creating a transporter account
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Transporter name
	// required: true
	// default: Sharma Transport
	Name string `json:"name"`

	// Contact phone
	// default: 9876543210
	Phone string `json:"phone"`
}

// CreateAccountResponse represents a successful account creation response
// swagger:model CreateAccountResponse
type CreateAccountResponse struct {
	// Created account
	Account *models.Account `json:"account"`
}

// AccountErrorResponse represents an error response for account operations
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	// default: Account name is required
	Error string `json:"error"`
}

// NewCreateAccountHandler returns an HTTP handler for registering a transporter account.
// @Summary Create transporter account
// @Description Registers a new transporter account that transactions can be booked against.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Create Account Request"
// @Success 201 {object} handlers.CreateAccountResponse "Account created"
// @Failure 400 {object} handlers.AccountErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Router /accounts [post]
// @Security BearerAuth
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Invalid request body"})
			return
		}

		account, err := svc.Create(r.Context(), req.Name, req.Phone)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Account name is required"})
			default:
				logger.Log.Errorw("failed to create account", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateAccountResponse{Account: account})
	}
}
