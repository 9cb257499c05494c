package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/ledger"
	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// LedgerGetter defines the interface that the service must implement.
type LedgerGetter interface {
	GetLedger(ctx context.Context, accountID uuid.UUID, filter models.LedgerFilter) (models.Ledger, error)
}

// LedgerRowResponse represents a single ledger row with its running balance
// swagger:model LedgerRowResponse
type LedgerRowResponse struct {
	// Transaction behind this row
	Transaction models.Transaction `json:"transaction"`

	// Balance after this row; pending and rejected rows carry the prior balance
	// default: 6000.00
	RunningBalance string `json:"running_balance"`
}

// LedgerResponse represents a windowed account ledger
// swagger:model LedgerResponse
type LedgerResponse struct {
	// Balance carried into the window from approved transactions before it
	// default: 1000.00
	OpeningBalance string `json:"opening_balance"`

	// Ledger rows in date order
	Rows []LedgerRowResponse `json:"rows"`

	// Running balance after the last row
	// default: 6000.00
	ClosingBalance string `json:"closing_balance"`
}

// NewLedgerHandler returns an HTTP handler for the running-balance ledger
// view of an account, optionally windowed by date and narrowed by type or
// status.
// @Summary Get account ledger
// @Tags ledger
// @Produce json
// @Param accountID path string true "Account ID"
// @Param date_from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param type query string false "DEBIT or CREDIT"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} handlers.LedgerResponse "Account ledger"
// @Failure 400 {object} handlers.BalanceErrorResponse "Invalid filter or stored data"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account not found"
// @Router /accounts/{accountID}/ledger [get]
// @Security BearerAuth
func NewLedgerHandler(svc LedgerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Invalid account id"})
			return
		}

		filter, err := parseLedgerFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: err.Error()})
			return
		}

		result, err := svc.GetLedger(r.Context(), accountID, filter)
		if err != nil {
			var vErr *ledger.ValidationError
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Account not found"})
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: vErr.Error()})
			default:
				logger.Log.Errorw("failed to build ledger", "accountID", accountID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			}
			return
		}

		rows := make([]LedgerRowResponse, 0, len(result.Rows))
		for _, row := range result.Rows {
			rows = append(rows, LedgerRowResponse{
				Transaction:    row.Transaction,
				RunningBalance: row.RunningBalance.StringFixed(2),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LedgerResponse{
			OpeningBalance: result.OpeningBalance.StringFixed(2),
			Rows:           rows,
			ClosingBalance: result.ClosingBalance.StringFixed(2),
		})
	}
}
