package walletservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brokermart/brokermart/internal/cache"
	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	TypeDeposit     string = "DEPOSIT"
	TypeWithdrawal  string = "WITHDRAWAL"
	TypeTransferIn  string = "TRANSFER_IN"
	TypeTransferOut string = "TRANSFER_OUT"
	TypeCommission  string = "COMMISSION"
	TypeBonus       string = "BONUS"
	TypeRefund      string = "REFUND"
)

const (
	StatusPending   string = "PENDING"
	StatusCompleted string = "COMPLETED"
	StatusFailed    string = "FAILED"
	StatusRefunded  string = "REFUNDED"
)

const walletCacheTTL = 5 * time.Minute

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, userID int, balance float64, points int) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

// UserDirectory resolves user identifiers; used to validate transfer
// recipients. Owned by the identity subsystem.
type UserDirectory interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Notifier is informed after a transaction commits. Failures are logged and
// never affect the committed state.
type Notifier interface {
	TransactionCompleted(ctx context.Context, transaction *domain.Transaction) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, key string) error
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	users           UserDirectory
	txManager       pg.TXManager
	notifier        Notifier
	cache           Cache
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, users UserDirectory, txManager pg.TXManager, notifier Notifier, c Cache) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		users:           users,
		txManager:       txManager,
		notifier:        notifier,
		cache:           c,
	}
}

// GetOrCreateWallet returns the user's wallet, creating an empty one on first
// need. Safe under concurrent first access: the insert is conditional on the
// unique user key, and the loser of the race re-reads the winner's row.
func (s *Service) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet, err = s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if wallet == nil {
		wallet, err = s.walletRepo.GetByUserID(ctx, userID)
		if err != nil {
			zap.L().Error("failed to get wallet after create race", zap.Error(err))
			return nil, apperr.FromStore(err)
		}
	}
	return wallet, nil
}

// GetWallet is the read path: cached copy when fresh, store otherwise.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	key := walletCacheKey(userID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var wallet domain.Wallet
		if err := json.Unmarshal([]byte(cached), &wallet); err == nil {
			return &wallet, nil
		}
		zap.L().Warn("corrupt wallet cache entry", zap.Int("userID", userID))
	} else if !errors.Is(err, cache.ErrKeyNotFound) {
		zap.L().Warn("wallet cache lookup failed", zap.Error(err))
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(wallet); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), walletCacheTTL); err != nil {
			zap.L().Warn("failed to cache wallet", zap.Error(err))
		}
	}
	return wallet, nil
}

// AddFunds credits the wallet and appends the deposit record in one unit of
// work; either both persist or neither does.
func (s *Service) AddFunds(ctx context.Context, userID int, amount float64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, apperr.ErrInvalidAmount
	}

	var wallet *domain.Wallet
	var deposit *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lockOrCreateWallet(ctx, userID)
		if err != nil {
			return err
		}
		wallet, err = s.walletRepo.UpdateBalance(ctx, userID, locked.Balance+amount, locked.Points)
		if err != nil {
			return err
		}
		deposit, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      amount,
			Type:        TypeDeposit,
			Status:      StatusCompleted,
			Description: fmt.Sprintf("Added funds to wallet: $%.2f", amount),
		})
		return err
	})
	if err != nil {
		zap.L().Error("add funds failed", zap.Int("userID", userID), zap.Error(err))
		return nil, apperr.FromStore(err)
	}

	s.invalidateWallet(ctx, userID)
	s.notifyCompleted(ctx, deposit)

	zap.L().Info("funds added", zap.Int("userID", userID), zap.Float64("amount", amount))
	return wallet, nil
}

// Transfer moves funds between two wallets. Both wallet rows are locked in
// ascending user-ID order, so concurrent transfers between the same pair
// cannot deadlock and the funds check always sees the latest balance.
func (s *Service) Transfer(ctx context.Context, senderID, recipientID int, amount float64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperr.ErrInvalidAmount
	}
	if senderID == recipientID {
		return nil, apperr.ErrSelfTransfer
	}

	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		zap.L().Error("failed to resolve recipient", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if recipient == nil {
		return nil, apperr.ErrRecipientNotFound
	}

	var outgoing, incoming *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallets := make(map[int]*domain.Wallet, 2)
		for _, id := range lockOrder(senderID, recipientID) {
			w, err := s.lockOrCreateWallet(ctx, id)
			if err != nil {
				return err
			}
			wallets[id] = w
		}

		senderWallet := wallets[senderID]
		if senderWallet.Balance < amount {
			return apperr.ErrInsufficientFunds
		}

		// Both legs enter the ledger pending and settle once the balances
		// have moved, so the records trace the transfer lifecycle.
		var err error
		outgoing, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      senderID,
			Amount:      -amount,
			Type:        TypeTransferOut,
			Status:      StatusPending,
			Description: description,
			Metadata:    map[string]any{"recipient_id": recipientID},
		})
		if err != nil {
			return err
		}
		incoming, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      recipientID,
			Amount:      amount,
			Type:        TypeTransferIn,
			Status:      StatusPending,
			Description: description,
			Metadata:    map[string]any{"sender_id": senderID},
		})
		if err != nil {
			return err
		}

		if _, err := s.walletRepo.UpdateBalance(ctx, senderID, senderWallet.Balance-amount, senderWallet.Points); err != nil {
			return err
		}
		recipientWallet := wallets[recipientID]
		if _, err := s.walletRepo.UpdateBalance(ctx, recipientID, recipientWallet.Balance+amount, recipientWallet.Points); err != nil {
			return err
		}

		for _, leg := range []*domain.Transaction{outgoing, incoming} {
			if err := s.transactionRepo.UpdateStatus(ctx, leg.ID, StatusCompleted); err != nil {
				return err
			}
			leg.Status = StatusCompleted
		}
		return nil
	})
	if err != nil {
		zap.L().Error("transfer failed", zap.Int("senderID", senderID), zap.Int("recipientID", recipientID), zap.Error(err))
		return nil, apperr.FromStore(err)
	}

	s.invalidateWallet(ctx, senderID)
	s.invalidateWallet(ctx, recipientID)

	var g errgroup.Group
	for _, transaction := range []*domain.Transaction{outgoing, incoming} {
		transaction := transaction
		g.Go(func() error {
			return s.notifier.TransactionCompleted(ctx, transaction)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("transfer notification failed", zap.Error(err))
	}

	zap.L().Info("transfer completed",
		zap.Int("senderID", senderID),
		zap.Int("recipientID", recipientID),
		zap.Float64("amount", amount),
	)
	return outgoing, nil
}

// CreditPoints awards points to the user's wallet. Joins the caller's open
// transaction when there is one.
func (s *Service) CreditPoints(ctx context.Context, userID, points int) error {
	if points < 0 {
		return apperr.ErrInvalidAmount
	}
	if points == 0 {
		return nil
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockOrCreateWallet(ctx, userID)
		if err != nil {
			return err
		}
		_, err = s.walletRepo.UpdateBalance(ctx, userID, wallet.Balance, wallet.Points+points)
		return err
	})
	if err != nil {
		zap.L().Error("credit points failed", zap.Int("userID", userID), zap.Error(err))
		return apperr.FromStore(err)
	}

	s.invalidateWallet(ctx, userID)
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	return transactions, nil
}

// lockOrCreateWallet returns the wallet under a row lock, creating it first
// when the user has none yet. Must run inside a transaction.
func (s *Service) lockOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	if _, err := s.walletRepo.Create(ctx, userID); err != nil {
		return nil, err
	}
	wallet, err = s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperr.ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) invalidateWallet(ctx context.Context, userID int) {
	if err := s.cache.Del(ctx, walletCacheKey(userID)); err != nil {
		zap.L().Warn("failed to invalidate wallet cache", zap.Int("userID", userID), zap.Error(err))
	}
}

func (s *Service) notifyCompleted(ctx context.Context, transaction *domain.Transaction) {
	if err := s.notifier.TransactionCompleted(ctx, transaction); err != nil {
		zap.L().Warn("transaction notification failed", zap.Error(err))
	}
}

func walletCacheKey(userID int) string {
	return fmt.Sprintf("wallet:%d", userID)
}

func lockOrder(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
