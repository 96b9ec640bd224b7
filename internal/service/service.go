package service

import (
	"github.com/brokermart/brokermart/internal/handlers/auth"
	"github.com/brokermart/brokermart/internal/handlers/promotion"
	"github.com/brokermart/brokermart/internal/handlers/wallet"

	pkgauth "github.com/brokermart/brokermart/pkg/auth"

	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/internal/repo"
	authservice "github.com/brokermart/brokermart/internal/service/authservice"
	promotionservice "github.com/brokermart/brokermart/internal/service/promotionservice"
	walletservice "github.com/brokermart/brokermart/internal/service/walletservice"
)

// Notifier covers every event the services emit.
type Notifier interface {
	walletservice.Notifier
	promotionservice.Notifier
}

type Services struct {
	AuthService      auth.Service
	WalletService    wallet.Service
	PromotionService promotion.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier Notifier, cache walletservice.Cache) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, repo.UserRepo, txManager, notifier, cache)
	promotionService := promotionservice.New(repo.PromotionRepo, repo.ClaimRepo, repo.BusinessRepo, walletService, txManager, notifier)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		WalletService:    walletService,
		PromotionService: promotionService,
	}
}
