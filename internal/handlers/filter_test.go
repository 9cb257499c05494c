package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLedgerFilter(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger", nil)

		filter, err := parseLedgerFilter(req)
		require.NoError(t, err)
		assert.Nil(t, filter.DateFrom)
		assert.Nil(t, filter.DateTo)
		assert.Nil(t, filter.Type)
		assert.Nil(t, filter.Status)
	})

	t.Run("full query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger?date_from=2024-01-01&date_to=2024-01-31&type=DEBIT&status=APPROVED", nil)

		filter, err := parseLedgerFilter(req)
		require.NoError(t, err)
		require.NotNil(t, filter.DateFrom)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
		require.NotNil(t, filter.DateTo)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *filter.DateTo)
		require.NotNil(t, filter.Type)
		assert.Equal(t, models.Debit, *filter.Type)
		require.NotNil(t, filter.Status)
		assert.Equal(t, models.StatusApproved, *filter.Status)
	})

	t.Run("bad date_from", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger?date_from=01-01-2024", nil)

		_, err := parseLedgerFilter(req)
		assert.Error(t, err)
	})

	t.Run("bad date_to", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger?date_to=tomorrow", nil)

		_, err := parseLedgerFilter(req)
		assert.Error(t, err)
	})

	t.Run("bad type", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger?type=TRANSFER", nil)

		_, err := parseLedgerFilter(req)
		assert.Error(t, err)
	})

	t.Run("bad status", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ledger?status=MAYBE", nil)

		_, err := parseLedgerFilter(req)
		assert.Error(t, err)
	})
}
