package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avasekar/transport-ledger/internal/ledger"
	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// NewExportLedgerHandler returns an HTTP handler streaming the account
// ledger as a CSV statement. Each row fills exactly one of the debit and
// credit columns; the other stays blank, never "0.00", matching how Indian
// accountants read a khata.
// @Summary Export account ledger as CSV
// @Tags ledger
// @Produce text/csv
// @Param accountID path string true "Account ID"
// @Param date_from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param type query string false "DEBIT or CREDIT"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {string} string "CSV ledger"
// @Failure 400 {object} handlers.BalanceErrorResponse "Invalid filter or stored data"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account not found"
// @Router /accounts/{accountID}/ledger/export [get]
// @Security BearerAuth
func NewExportLedgerHandler(svc LedgerGetter) http.HandlerFunc {
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
				logger.Log.Errorw("failed to build ledger for export", "accountID", accountID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", "ledger-"+accountID.String()+".csv"))
		w.WriteHeader(http.StatusOK)

		cw := csv.NewWriter(w)
		records := [][]string{
			{"date", "description", "debit", "credit", "running_balance", "status"},
			{"", "Opening Balance", "", "", result.OpeningBalance.StringFixed(2), ""},
		}
		for _, row := range result.Rows {
			txn := row.Transaction
			debit, credit := "", ""
			if txn.Type == models.Debit {
				debit = txn.Amount.StringFixed(2)
			} else {
				credit = txn.Amount.StringFixed(2)
			}
			records = append(records, []string{
				txn.Date.Format(dateLayout),
				txn.Description,
				debit,
				credit,
				row.RunningBalance.StringFixed(2),
				string(txn.Status),
			})
		}
		records = append(records, []string{
			"", "Closing Balance", "", "", result.ClosingBalance.StringFixed(2), "",
		})

		if err := cw.WriteAll(records); err != nil {
			logger.Log.Errorw("failed to write csv ledger", "accountID", accountID, "err", err)
		}
	}
}
