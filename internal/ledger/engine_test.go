package ledger

import (
	"testing"
	"time"

	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func txn(txType models.TransactionType, amount string, status models.TransactionStatus, txDate time.Time) models.Transaction {
	return models.Transaction{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Date:      txDate,
		Type:      txType,
		Amount:    decimal.RequireFromString(amount),
		Status:    status,
	}
}

func TestComputeAccountBalance(t *testing.T) {
	tests := []struct {
		name            string
		txns            []models.Transaction
		expectedDebits  string
		expectedCredits string
		expectedBalance string
	}{
		{
			name:            "empty input yields zero snapshot",
			txns:            nil,
			expectedDebits:  "0",
			expectedCredits: "0",
			expectedBalance: "0",
		},
		{
			name: "approved debits and credits",
			txns: []models.Transaction{
				txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
				txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
			},
			expectedDebits:  "1000",
			expectedCredits: "400",
			expectedBalance: "600",
		},
		{
			name: "pending and rejected transactions are excluded",
			txns: []models.Transaction{
				txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
				txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
				txn(models.Debit, "200", models.StatusPending, date(2024, 1, 12)),
				txn(models.Credit, "300", models.StatusRejected, date(2024, 1, 13)),
			},
			expectedDebits:  "1000",
			expectedCredits: "400",
			expectedBalance: "600",
		},
		{
			name: "order does not matter",
			txns: []models.Transaction{
				txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
				txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
			},
			expectedDebits:  "1000",
			expectedCredits: "400",
			expectedBalance: "600",
		},
		{
			name: "decimal amounts keep precision",
			txns: []models.Transaction{
				txn(models.Debit, "0.10", models.StatusApproved, date(2024, 1, 1)),
				txn(models.Debit, "0.20", models.StatusApproved, date(2024, 1, 2)),
				txn(models.Credit, "0.30", models.StatusApproved, date(2024, 1, 3)),
			},
			expectedDebits:  "0.30",
			expectedCredits: "0.30",
			expectedBalance: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ComputeAccountBalance(tt.txns)
			require.NoError(t, err)
			assert.True(t, snap.TotalDebits.Equal(decimal.RequireFromString(tt.expectedDebits)), "debits: got %s", snap.TotalDebits)
			assert.True(t, snap.TotalCredits.Equal(decimal.RequireFromString(tt.expectedCredits)), "credits: got %s", snap.TotalCredits)
			assert.True(t, snap.Balance.Equal(decimal.RequireFromString(tt.expectedBalance)), "balance: got %s", snap.Balance)
		})
	}
}

func TestComputeAccountBalance_NegativeAmount(t *testing.T) {
	bad := txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 1))
	bad.Amount = decimal.RequireFromString("-5")

	_, err := ComputeAccountBalance([]models.Transaction{bad})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, bad.ID.String(), vErr.TransactionID)
	assert.Equal(t, "amount", vErr.Field)
}

func TestComputeAccountBalance_MissingDate(t *testing.T) {
	bad := models.Transaction{
		ID:     uuid.New(),
		Type:   models.Debit,
		Amount: decimal.NewFromInt(100),
		Status: models.StatusApproved,
	}

	_, err := ComputeAccountBalance([]models.Transaction{bad})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
}

func TestComputeOpeningBalance(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
		txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
		txn(models.Debit, "200", models.StatusPending, date(2024, 1, 3)),
	}

	t.Run("nil window start returns zero", func(t *testing.T) {
		opening, err := ComputeOpeningBalance(txns, nil)
		require.NoError(t, err)
		assert.True(t, opening.IsZero())
	})

	t.Run("only approved transactions strictly before the start count", func(t *testing.T) {
		opening, err := ComputeOpeningBalance(txns, datePtr(2024, 1, 8))
		require.NoError(t, err)
		assert.True(t, opening.Equal(decimal.NewFromInt(1000)), "got %s", opening)
	})

	t.Run("transaction on the start date is excluded", func(t *testing.T) {
		opening, err := ComputeOpeningBalance(txns, datePtr(2024, 1, 5))
		require.NoError(t, err)
		assert.True(t, opening.IsZero(), "got %s", opening)
	})
}

func TestBuildLedger_NoFilter(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
		txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
		txn(models.Debit, "200", models.StatusPending, date(2024, 1, 12)),
	}

	result, err := BuildLedger(txns, models.LedgerFilter{})
	require.NoError(t, err)

	assert.True(t, result.OpeningBalance.IsZero())
	require.Len(t, result.Rows, 3)
	assert.True(t, result.Rows[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Rows[1].RunningBalance.Equal(decimal.NewFromInt(600)))
	// the pending row carries the prior running balance unchanged
	assert.True(t, result.Rows[2].RunningBalance.Equal(decimal.NewFromInt(600)))
	assert.True(t, result.ClosingBalance.Equal(decimal.NewFromInt(600)))
}

func TestBuildLedger_DateFromSeedsOpeningBalance(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
		txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
		txn(models.Debit, "200", models.StatusPending, date(2024, 1, 12)),
	}

	result, err := BuildLedger(txns, models.LedgerFilter{DateFrom: datePtr(2024, 1, 8)})
	require.NoError(t, err)

	assert.True(t, result.OpeningBalance.Equal(decimal.NewFromInt(1000)), "opening: got %s", result.OpeningBalance)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, models.Credit, result.Rows[0].Transaction.Type)
	assert.True(t, result.Rows[0].RunningBalance.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, models.StatusPending, result.Rows[1].Transaction.Status)
	assert.True(t, result.Rows[1].RunningBalance.Equal(decimal.NewFromInt(600)))
	assert.True(t, result.ClosingBalance.Equal(decimal.NewFromInt(600)))
}

func TestBuildLedger_InclusiveWindowEnds(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 5)),
		txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 10)),
		txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 15)),
	}

	result, err := BuildLedger(txns, models.LedgerFilter{
		DateFrom: datePtr(2024, 1, 5),
		DateTo:   datePtr(2024, 1, 10),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.True(t, result.ClosingBalance.Equal(decimal.NewFromInt(200)))
}

func TestBuildLedger_InvertedWindowIsEmpty(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 5)),
	}

	result, err := BuildLedger(txns, models.LedgerFilter{
		DateFrom: datePtr(2024, 2, 1),
		DateTo:   datePtr(2024, 1, 1),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Rows)
	// opening balance still reflects everything approved before DateFrom
	assert.True(t, result.OpeningBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.ClosingBalance.Equal(result.OpeningBalance))
}

func TestBuildLedger_TypeAndStatusFilter(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "1000", models.StatusApproved, date(2024, 1, 5)),
		txn(models.Credit, "400", models.StatusApproved, date(2024, 1, 10)),
		txn(models.Credit, "200", models.StatusPending, date(2024, 1, 12)),
	}

	credit := models.Credit
	approved := models.StatusApproved

	result, err := BuildLedger(txns, models.LedgerFilter{Type: &credit, Status: &approved})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, models.Credit, result.Rows[0].Transaction.Type)
	// only the filtered rows move the running total
	assert.True(t, result.ClosingBalance.Equal(decimal.NewFromInt(-400)), "got %s", result.ClosingBalance)
}

func TestBuildLedger_SameDayRowsKeepInputOrder(t *testing.T) {
	first := txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 5))
	second := txn(models.Credit, "30", models.StatusApproved, date(2024, 1, 5))
	third := txn(models.Debit, "50", models.StatusApproved, date(2024, 1, 5))

	result, err := BuildLedger([]models.Transaction{first, second, third}, models.LedgerFilter{})
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, first.ID, result.Rows[0].Transaction.ID)
	assert.Equal(t, second.ID, result.Rows[1].Transaction.ID)
	assert.Equal(t, third.ID, result.Rows[2].Transaction.ID)
	assert.True(t, result.Rows[0].RunningBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Rows[1].RunningBalance.Equal(decimal.NewFromInt(70)))
	assert.True(t, result.Rows[2].RunningBalance.Equal(decimal.NewFromInt(120)))
}

func TestBuildLedger_ValidationStopsAtFirstBadRecord(t *testing.T) {
	good := txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 5))
	bad := txn(models.Credit, "50", models.StatusApproved, date(2024, 1, 6))
	bad.Amount = decimal.RequireFromString("-1")

	_, err := BuildLedger([]models.Transaction{good, bad}, models.LedgerFilter{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, bad.ID.String(), vErr.TransactionID)
}

func TestBuildLedger_ValidatesBeforeOpeningBalance(t *testing.T) {
	// the bad record sits before the window start, so it is only touched by
	// the opening-balance carry-in
	bad := txn(models.Debit, "100", models.StatusApproved, date(2024, 1, 2))
	bad.Amount = decimal.RequireFromString("-100")
	good := txn(models.Credit, "50", models.StatusApproved, date(2024, 1, 10))
	from := date(2024, 1, 8)

	_, err := BuildLedger([]models.Transaction{bad, good}, models.LedgerFilter{DateFrom: &from})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, bad.ID.String(), vErr.TransactionID)
	assert.Equal(t, "amount", vErr.Field)
}

// Closing balance of an unfiltered ledger equals the aggregate snapshot
// balance, and opening balance is zero.
func TestBalanceIdentity(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "500.25", models.StatusApproved, date(2024, 3, 1)),
		txn(models.Credit, "120.75", models.StatusApproved, date(2024, 3, 4)),
		txn(models.Debit, "99.99", models.StatusPending, date(2024, 3, 5)),
		txn(models.Credit, "80", models.StatusApproved, date(2024, 3, 7)),
		txn(models.Debit, "20", models.StatusRejected, date(2024, 3, 8)),
	}

	snap, err := ComputeAccountBalance(txns)
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(snap.TotalDebits.Sub(snap.TotalCredits)))

	result, err := BuildLedger(txns, models.LedgerFilter{})
	require.NoError(t, err)
	assert.True(t, result.OpeningBalance.IsZero())
	assert.True(t, result.ClosingBalance.Equal(snap.Balance))
}

// Adding a pending or rejected transaction never changes any computed figure.
func TestNonApprovedExclusion(t *testing.T) {
	base := []models.Transaction{
		txn(models.Debit, "300", models.StatusApproved, date(2024, 2, 1)),
		txn(models.Credit, "100", models.StatusApproved, date(2024, 2, 10)),
	}

	baseSnap, err := ComputeAccountBalance(base)
	require.NoError(t, err)
	baseLedger, err := BuildLedger(base, models.LedgerFilter{DateFrom: datePtr(2024, 2, 5)})
	require.NoError(t, err)

	for _, status := range []models.TransactionStatus{models.StatusPending, models.StatusRejected} {
		extended := append([]models.Transaction{}, base...)
		extended = append(extended, txn(models.Debit, "999", status, date(2024, 2, 3)))

		snap, err := ComputeAccountBalance(extended)
		require.NoError(t, err)
		assert.True(t, snap.Balance.Equal(baseSnap.Balance))
		assert.True(t, snap.TotalDebits.Equal(baseSnap.TotalDebits))
		assert.True(t, snap.TotalCredits.Equal(baseSnap.TotalCredits))

		result, err := BuildLedger(extended, models.LedgerFilter{DateFrom: datePtr(2024, 2, 5)})
		require.NoError(t, err)
		assert.True(t, result.OpeningBalance.Equal(baseLedger.OpeningBalance))
		assert.True(t, result.ClosingBalance.Equal(baseLedger.ClosingBalance))
	}
}

// Each approved row moves the running balance by exactly its signed amount.
func TestRunningBalanceConsistency(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "150", models.StatusApproved, date(2024, 4, 1)),
		txn(models.Credit, "40", models.StatusApproved, date(2024, 4, 2)),
		txn(models.Debit, "75.50", models.StatusPending, date(2024, 4, 3)),
		txn(models.Debit, "60", models.StatusApproved, date(2024, 4, 4)),
		txn(models.Credit, "10", models.StatusRejected, date(2024, 4, 5)),
		txn(models.Credit, "25", models.StatusApproved, date(2024, 4, 6)),
	}

	result, err := BuildLedger(txns, models.LedgerFilter{})
	require.NoError(t, err)

	prev := result.OpeningBalance
	for i, row := range result.Rows {
		expected := prev
		if row.Transaction.Status == models.StatusApproved {
			if row.Transaction.Type == models.Debit {
				expected = prev.Add(row.Transaction.Amount)
			} else {
				expected = prev.Sub(row.Transaction.Amount)
			}
		}
		assert.True(t, row.RunningBalance.Equal(expected), "row %d: got %s, want %s", i, row.RunningBalance, expected)
		prev = row.RunningBalance
	}
	assert.True(t, result.ClosingBalance.Equal(prev))
}

// Splitting the history at a date and chaining closing -> opening gives the
// same final balance as computing over the whole range at once.
func TestWindowAdditivity(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Debit, "100", models.StatusApproved, date(2024, 5, 1)),
		txn(models.Credit, "30", models.StatusApproved, date(2024, 5, 3)),
		txn(models.Debit, "200", models.StatusApproved, date(2024, 5, 7)),
		txn(models.Credit, "50", models.StatusPending, date(2024, 5, 8)),
		txn(models.Credit, "120", models.StatusApproved, date(2024, 5, 12)),
	}

	full, err := BuildLedger(txns, models.LedgerFilter{})
	require.NoError(t, err)

	before, err := BuildLedger(txns, models.LedgerFilter{DateTo: datePtr(2024, 5, 6)})
	require.NoError(t, err)
	after, err := BuildLedger(txns, models.LedgerFilter{DateFrom: datePtr(2024, 5, 7)})
	require.NoError(t, err)

	// the second window's opening balance is exactly the first window's close
	assert.True(t, after.OpeningBalance.Equal(before.ClosingBalance))
	assert.True(t, after.ClosingBalance.Equal(full.ClosingBalance))
}

// Identical inputs yield identical outputs and the input is never mutated.
func TestBuildLedgerIdempotence(t *testing.T) {
	txns := []models.Transaction{
		txn(models.Credit, "400", models.StatusApproved, date(2024, 6, 2)),
		txn(models.Debit, "1000", models.StatusApproved, date(2024, 6, 1)),
		txn(models.Debit, "200", models.StatusPending, date(2024, 6, 2)),
	}
	original := append([]models.Transaction{}, txns...)

	first, err := BuildLedger(txns, models.LedgerFilter{DateFrom: datePtr(2024, 6, 2)})
	require.NoError(t, err)
	second, err := BuildLedger(txns, models.LedgerFilter{DateFrom: datePtr(2024, 6, 2)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, txns)
}

func TestDayGranularity(t *testing.T) {
	// times of day on the same calendar date compare equal
	morning := txn(models.Debit, "100", models.StatusApproved,
		time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC))
	evening := time.Date(2024, 7, 1, 23, 59, 0, 0, time.UTC)

	result, err := BuildLedger([]models.Transaction{morning}, models.LedgerFilter{
		DateFrom: &evening,
		DateTo:   &evening,
	})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
}
