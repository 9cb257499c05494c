// Package ledger implements the balance and running-ledger computation for
// transporter accounts. All functions are pure: they never mutate their
// input and hold no state between calls, so callers pass a freshly fetched
// transaction snapshot on every invocation.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ValidationError reports a malformed transaction. Bad records are never
// silently skipped or coerced to zero; the computation stops at the first
// invalid record encountered.
type ValidationError struct {
	TransactionID string
	Field         string
	Reason        string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction %s: field %s: %s", e.TransactionID, e.Field, e.Reason)
}

// validate checks a single transaction for the invariants every computation
// relies on: a parseable, non-negative amount and a set date.
func validate(txn models.Transaction) error {
	if txn.Amount.IsNegative() {
		return &ValidationError{
			TransactionID: txn.ID.String(),
			Field:         "amount",
			Reason:        "must be non-negative",
		}
	}
	if txn.Date.IsZero() {
		return &ValidationError{
			TransactionID: txn.ID.String(),
			Field:         "date",
			Reason:        "missing date",
		}
	}
	return nil
}

func validateAll(txns []models.Transaction) error {
	for _, txn := range txns {
		if err := validate(txn); err != nil {
			return err
		}
	}
	return nil
}

// day normalizes a timestamp to UTC midnight. Transaction dates carry
// date-only semantics, so all comparisons happen at day granularity.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// signedAmount returns the effect of an approved transaction on a balance:
// a debit increases the amount owed to the transporter, a credit decreases it.
func signedAmount(txn models.Transaction) decimal.Decimal {
	if txn.Type == models.Credit {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// ComputeAccountBalance computes the aggregate balance snapshot over all
// approved transactions of one account. Input order does not matter.
// Empty input yields an all-zero snapshot.
func ComputeAccountBalance(txns []models.Transaction) (models.BalanceSnapshot, error) {
	if err := validateAll(txns); err != nil {
		return models.BalanceSnapshot{}, err
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, txn := range txns {
		if txn.Status != models.StatusApproved {
			continue
		}
		switch txn.Type {
		case models.Debit:
			totalDebits = totalDebits.Add(txn.Amount)
		case models.Credit:
			totalCredits = totalCredits.Add(txn.Amount)
		}
	}

	return models.BalanceSnapshot{
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Balance:      totalDebits.Sub(totalCredits),
	}, nil
}

// ComputeOpeningBalance returns the net approved balance accumulated
// strictly before windowStart. A nil windowStart means no prior-period
// carry-forward: the result is zero.
func ComputeOpeningBalance(txns []models.Transaction, windowStart *time.Time) (decimal.Decimal, error) {
	if err := validateAll(txns); err != nil {
		return decimal.Zero, err
	}
	return openingBalance(txns, windowStart), nil
}

// openingBalance assumes already-validated input.
func openingBalance(txns []models.Transaction, windowStart *time.Time) decimal.Decimal {
	if windowStart == nil {
		return decimal.Zero
	}

	start := day(*windowStart)
	opening := decimal.Zero
	for _, txn := range txns {
		if txn.Status != models.StatusApproved {
			continue
		}
		if !day(txn.Date).Before(start) {
			continue
		}
		opening = opening.Add(signedAmount(txn))
	}
	return opening
}

// inWindow applies the filter predicates to one transaction. The date window
// is inclusive on both ends; an inverted window simply matches nothing.
func inWindow(txn models.Transaction, filter models.LedgerFilter) bool {
	d := day(txn.Date)
	if filter.DateFrom != nil && d.Before(day(*filter.DateFrom)) {
		return false
	}
	if filter.DateTo != nil && d.After(day(*filter.DateTo)) {
		return false
	}
	if filter.Type != nil && txn.Type != *filter.Type {
		return false
	}
	if filter.Status != nil && txn.Status != *filter.Status {
		return false
	}
	return true
}

// BuildLedger produces the windowed running-balance ledger for one account.
//
// The opening balance carries in the net of approved transactions dated
// before the window start (zero when DateFrom is unset). In-window rows are
// sorted ascending by date; same-day rows keep their input order, so callers
// that pass transactions in insertion order get deterministic output. The
// running total is seeded at the opening balance and moved only by approved
// rows; each row records the balance after that row was applied. Pending and
// rejected rows appear in the output for display but carry the prior running
// balance unchanged. The closing balance is the running total after the last
// row.
func BuildLedger(txns []models.Transaction, filter models.LedgerFilter) (models.Ledger, error) {
	if err := validateAll(txns); err != nil {
		return models.Ledger{}, err
	}

	opening := openingBalance(txns, filter.DateFrom)

	filtered := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if inWindow(txn, filter) {
			filtered = append(filtered, txn)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return day(filtered[i].Date).Before(day(filtered[j].Date))
	})

	running := opening
	rows := make([]models.LedgerRow, 0, len(filtered))
	for _, txn := range filtered {
		if txn.Status == models.StatusApproved {
			running = running.Add(signedAmount(txn))
		}
		rows = append(rows, models.LedgerRow{
			Transaction:    txn,
			RunningBalance: running,
		})
	}

	return models.Ledger{
		OpeningBalance: opening,
		Rows:           rows,
		ClosingBalance: running,
	}, nil
}
