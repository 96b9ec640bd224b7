package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/dto"
	"github.com/brokermart/brokermart/pkg/apperr"
	"github.com/brokermart/brokermart/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestWalletHandler_GetWallet(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Wallet is returned",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: 7, UserID: 1, Balance: 100.5, Points: 20}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Store unavailable",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).
					Return(nil, apperr.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.GetWallet(w, authedRequest(http.MethodGet, "/api/user/wallet", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 7, resp.ID)
				assert.Equal(t, 100.5, resp.Balance)
				assert.Equal(t, 20, resp.Points)
			}
		})
	}
}

func TestWalletHandler_AddFunds(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Funds are added",
			body: `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(gomock.Any(), 1, 100.0).
					Return(&domain.Wallet{ID: 7, UserID: 1, Balance: 150}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid request body",
			body:           `not json`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Negative amount is rejected",
			body: `{"amount":-5}`,
			prepareMock: func() {
				service.EXPECT().AddFunds(gomock.Any(), 1, -5.0).
					Return(nil, apperr.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.AddFunds(w, authedRequest(http.MethodPost, "/api/user/wallet/add-funds", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 150.0, resp.Balance)
			}
		})
	}
}

func TestWalletHandler_Transfer(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Successful transfer",
			body: `{"recipient_id":2,"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, 25.0, "").
					Return(&domain.Transaction{
						ID:     42,
						Amount: -25,
						Type:   "TRANSFER_OUT",
						Status: "COMPLETED",
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"recipient_id":2,"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, 1000.0, "").
					Return(nil, apperr.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "insufficient_funds",
		},
		{
			name: "Unknown recipient",
			body: `{"recipient_id":99,"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 99, 25.0, "").
					Return(nil, apperr.ErrRecipientNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "recipient_not_found",
		},
		{
			name: "Self transfer",
			body: `{"recipient_id":1,"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 1, 25.0, "").
					Return(nil, apperr.ErrSelfTransfer)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "self_transfer",
		},
		{
			name:           "Invalid request body",
			body:           `not json`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Transfer(w, authedRequest(http.MethodPost, "/api/user/transactions/transfer", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.TransactionResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "TRANSFER_OUT", resp.Type)
				assert.Equal(t, -25.0, resp.Amount)
			}
			if tt.expectedCode != "" {
				var resp struct {
					Code string `json:"code"`
				}
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Code)
			}
		})
	}
}

func TestWalletHandler_GetTransactions(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	service.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
		{ID: 2, Amount: -25, Type: "TRANSFER_OUT", Status: "COMPLETED", CreatedAt: now},
		{ID: 1, Amount: 100, Type: "DEPOSIT", Status: "COMPLETED", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/api/user/transactions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.TransactionResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "TRANSFER_OUT", resp[0].Type)
	assert.Equal(t, "DEPOSIT", resp[1].Type)

	service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, apperr.ErrStoreUnavailable)

	w = httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/api/user/transactions", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
