package walletservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/brokermart/brokermart/internal/cache"
	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/pkg/apperr"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo, *MockUserDirectory, *pg.MockTXManager, *MockNotifier, *MockCache) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	users := NewMockUserDirectory(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	notifier := NewMockNotifier(ctrl)
	c := NewMockCache(ctrl)

	service := New(walletRepo, transactionRepo, users, txManager, notifier, c)
	defer ctrl.Finish()
	return service, walletRepo, transactionRepo, users, txManager, notifier, c
}

// passthroughTx makes the mock transaction manager run the unit of work
// directly, the way the real manager does inside an open transaction.
func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestGetOrCreateWallet(t *testing.T) {
	service, walletRepo, _, _, _, _, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name: "Existing wallet is returned",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 50}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 1, UserID: 1, Balance: 50},
		},
		{
			name: "Wallet is created on first access",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, nil)
				walletRepo.EXPECT().Create(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 1, UserID: 1},
		},
		{
			name: "Losing the creation race re-reads the winner's row",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, nil)
				walletRepo.EXPECT().Create(gomock.Any(), 1).Return(nil, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 1, UserID: 1},
		},
		{
			name: "Store timeout maps to unavailable",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, context.DeadlineExceeded)
			},
			expectedError: apperr.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetOrCreateWallet(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _, _, _, _, c := NewMock(t)

	t.Run("Cache hit skips the store", func(t *testing.T) {
		cached, _ := json.Marshal(&domain.Wallet{ID: 1, UserID: 1, Balance: 75})
		c.EXPECT().Get(gomock.Any(), "wallet:1").Return(string(cached), nil)

		wallet, err := service.GetWallet(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 75.0, wallet.Balance)
	})

	t.Run("Cache miss reads the store and fills the cache", func(t *testing.T) {
		c.EXPECT().Get(gomock.Any(), "wallet:1").Return("", cache.ErrKeyNotFound)
		walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 75}, nil)
		c.EXPECT().Set(gomock.Any(), "wallet:1", gomock.Any(), walletCacheTTL).Return(nil)

		wallet, err := service.GetWallet(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 75.0, wallet.Balance)
	})
}

func TestAddFunds(t *testing.T) {
	service, walletRepo, transactionRepo, _, txManager, notifier, c := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Deposit updates balance and records the transaction",
			amount: 100,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 50, Points: 5}, nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 150.0, 5).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 150, Points: 5}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, TypeDeposit, transaction.Type)
						assert.Equal(t, StatusCompleted, transaction.Status)
						assert.Equal(t, 100.0, transaction.Amount)
						assert.Equal(t, "Added funds to wallet: $100.00", transaction.Description)
						transaction.ID = 7
						return transaction, nil
					},
				)
				c.EXPECT().Del(gomock.Any(), "wallet:1").Return(nil)
				notifier.EXPECT().TransactionCompleted(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Negative amount is rejected before touching the store",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: apperr.ErrInvalidAmount,
		},
		{
			name:          "Zero amount is rejected",
			amount:        0,
			prepareMock:   func() {},
			expectedError: apperr.ErrInvalidAmount,
		},
		{
			name:   "Failed transaction record rolls the deposit back",
			amount: 100,
			prepareMock: func() {
				passthroughTx(txManager)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 50}, nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 150.0, 0).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 150}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.AddFunds(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, wallet)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 150.0, wallet.Balance)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	service, walletRepo, transactionRepo, users, txManager, notifier, c := NewMock(t)

	tests := []struct {
		name          string
		senderID      int
		recipientID   int
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Funds move atomically between both wallets",
			senderID:    1,
			recipientID: 2,
			amount:      25,
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				passthroughTx(txManager)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 100}, nil)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 2).Return(&domain.Wallet{ID: 2, UserID: 2, Balance: 10}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, TypeTransferOut, transaction.Type)
						assert.Equal(t, StatusPending, transaction.Status)
						assert.Equal(t, -25.0, transaction.Amount)
						assert.Equal(t, map[string]any{"recipient_id": 2}, transaction.Metadata)
						transaction.ID = 8
						return transaction, nil
					},
				)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, TypeTransferIn, transaction.Type)
						assert.Equal(t, StatusPending, transaction.Status)
						assert.Equal(t, 25.0, transaction.Amount)
						transaction.ID = 9
						return transaction, nil
					},
				)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 75.0, 0).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 75}, nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), 2, 35.0, 0).Return(&domain.Wallet{ID: 2, UserID: 2, Balance: 35}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 8, StatusCompleted).Return(nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 9, StatusCompleted).Return(nil)
				c.EXPECT().Del(gomock.Any(), "wallet:1").Return(nil)
				c.EXPECT().Del(gomock.Any(), "wallet:2").Return(nil)
				notifier.EXPECT().TransactionCompleted(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name:        "Insufficient funds leaves both balances untouched",
			senderID:    1,
			recipientID: 2,
			amount:      500,
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				passthroughTx(txManager)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 100}, nil)
				walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 2).Return(&domain.Wallet{ID: 2, UserID: 2, Balance: 10}, nil)
			},
			expectedError: apperr.ErrInsufficientFunds,
		},
		{
			name:          "Self transfer is rejected",
			senderID:      1,
			recipientID:   1,
			amount:        25,
			prepareMock:   func() {},
			expectedError: apperr.ErrSelfTransfer,
		},
		{
			name:        "Unknown recipient is rejected",
			senderID:    1,
			recipientID: 99,
			amount:      25,
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: apperr.ErrRecipientNotFound,
		},
		{
			name:          "Non-positive amount is rejected",
			senderID:      1,
			recipientID:   2,
			amount:        0,
			prepareMock:   func() {},
			expectedError: apperr.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			outgoing, err := service.Transfer(context.Background(), tt.senderID, tt.recipientID, tt.amount, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, outgoing)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, TypeTransferOut, outgoing.Type)
				assert.Equal(t, StatusCompleted, outgoing.Status)
				assert.Equal(t, -tt.amount, outgoing.Amount)
			}
		})
	}
}

func TestCreditPoints(t *testing.T) {
	service, walletRepo, _, _, txManager, _, c := NewMock(t)

	t.Run("Points are added under the row lock", func(t *testing.T) {
		passthroughTx(txManager)
		walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 50, Points: 10}, nil)
		walletRepo.EXPECT().UpdateBalance(gomock.Any(), 1, 50.0, 60).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 50, Points: 60}, nil)
		c.EXPECT().Del(gomock.Any(), "wallet:1").Return(nil)

		err := service.CreditPoints(context.Background(), 1, 50)
		assert.NoError(t, err)
	})

	t.Run("Negative points are rejected", func(t *testing.T) {
		err := service.CreditPoints(context.Background(), 1, -1)
		assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
	})

	t.Run("Zero points is a no-op", func(t *testing.T) {
		err := service.CreditPoints(context.Background(), 1, 0)
		assert.NoError(t, err)
	})
}

func TestGetTransactions(t *testing.T) {
	service, _, transactionRepo, _, _, _, _ := NewMock(t)

	transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
		{ID: 2, Type: TypeTransferOut},
		{ID: 1, Type: TypeDeposit},
	}, nil)

	transactions, err := service.GetTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)

	transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, context.DeadlineExceeded)

	_, err = service.GetTransactions(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}
