package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avasekar/transport-ledger/internal/models"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// parseLedgerFilter reads the optional date_from, date_to, type and status
// query parameters into a ledger filter.
func parseLedgerFilter(r *http.Request) (models.LedgerFilter, error) {
	var filter models.LedgerFilter
	q := r.URL.Query()

	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date_from %q", v)
		}
		filter.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date_to %q", v)
		}
		filter.DateTo = &t
	}
	if v := q.Get("type"); v != "" {
		txType := models.TransactionType(v)
		if txType != models.Debit && txType != models.Credit {
			return filter, fmt.Errorf("invalid type %q", v)
		}
		filter.Type = &txType
	}
	if v := q.Get("status"); v != "" {
		status := models.TransactionStatus(v)
		if status != models.StatusPending && status != models.StatusApproved && status != models.StatusRejected {
			return filter, fmt.Errorf("invalid status %q", v)
		}
		filter.Status = &status
	}

	return filter, nil
}
