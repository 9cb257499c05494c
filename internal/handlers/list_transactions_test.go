package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/avasekar/transport-ledger/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestListTransactionsHandler(t *testing.T) {
	accountID := uuid.New()
	txns := []models.Transaction{
		{
			ID:        uuid.New(),
			AccountID: accountID,
			Date:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Type:      models.Debit,
			Amount:    decimal.RequireFromString("1000"),
			Status:    models.StatusApproved,
		},
	}

	dateFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filterWithFrom := models.LedgerFilter{DateFrom: &dateFrom}

	tests := []struct {
		name               string
		accountID          string
		query              string
		setupMocks         func(mockSvc *MockTransactionListGetter)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:      "successful listing",
			accountID: accountID.String(),
			setupMocks: func(mockSvc *MockTransactionListGetter) {
				mockSvc.EXPECT().
					ListTransactions(gomock.Any(), accountID, models.LedgerFilter{}).
					Return(txns, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transactions",
		},
		{
			name:      "successful listing with date window",
			accountID: accountID.String(),
			query:     "?date_from=2024-01-01",
			setupMocks: func(mockSvc *MockTransactionListGetter) {
				mockSvc.EXPECT().
					ListTransactions(gomock.Any(), accountID, filterWithFrom).
					Return(txns, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transactions",
		},
		{
			name:               "invalid account id",
			accountID:          "not-a-uuid",
			setupMocks:         func(mockSvc *MockTransactionListGetter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "invalid filter",
			accountID:          accountID.String(),
			query:              "?date_from=05/01/2024",
			setupMocks:         func(mockSvc *MockTransactionListGetter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:      "account not found",
			accountID: accountID.String(),
			setupMocks: func(mockSvc *MockTransactionListGetter) {
				mockSvc.EXPECT().
					ListTransactions(gomock.Any(), accountID, models.LedgerFilter{}).
					Return(nil, services.ErrAccountNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:      "internal server error",
			accountID: accountID.String(),
			setupMocks: func(mockSvc *MockTransactionListGetter) {
				mockSvc.EXPECT().
					ListTransactions(gomock.Any(), accountID, models.LedgerFilter{}).
					Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTransactionListGetter(ctrl)
			tt.setupMocks(mockSvc)

			router := chi.NewRouter()
			router.Get("/accounts/{accountID}/transactions", NewListTransactionsHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/accounts/"+tt.accountID+"/transactions"+tt.query, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
