package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/brokermart/brokermart/docs"
	"github.com/brokermart/brokermart/internal/handlers/auth"
	"github.com/brokermart/brokermart/internal/handlers/promotion"
	"github.com/brokermart/brokermart/internal/handlers/wallet"
	"github.com/brokermart/brokermart/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		WalletService:    wallet.NewMockService(ctrl),
		PromotionService: promotion.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockPromotionHandler := NewMockPromotionHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().AddFunds(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Transfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().RegisterBusiness(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().CreatePromotion(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().ListActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().GetPromotion(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().Claim(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().GetUserClaims(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		WalletHandler:    mockWalletHandler,
		PromotionHandler: mockPromotionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/add-funds", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/transactions/transfer", http.StatusUnauthorized},
		{"GET", "/api/user/claims", http.StatusUnauthorized},
		{"GET", "/api/promotions", http.StatusOK},
		{"GET", "/api/promotions/1", http.StatusOK},
		{"POST", "/api/promotions", http.StatusUnauthorized},
		{"POST", "/api/promotions/1/claim", http.StatusUnauthorized},
		{"POST", "/api/business", http.StatusUnauthorized},
		{"POST", "/api/promotion-claims/1/approve", http.StatusUnauthorized},
		{"POST", "/api/promotion-claims/1/reject", http.StatusUnauthorized},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
