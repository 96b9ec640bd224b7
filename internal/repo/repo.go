package repo

import (
	"github.com/brokermart/brokermart/internal/pg"
	businessrepo "github.com/brokermart/brokermart/internal/repo/business-repo"
	claimrepo "github.com/brokermart/brokermart/internal/repo/claim-repo"
	promotionrepo "github.com/brokermart/brokermart/internal/repo/promotion-repo"
	transactionrepo "github.com/brokermart/brokermart/internal/repo/transaction-repo"
	userrepo "github.com/brokermart/brokermart/internal/repo/user-repo"
	walletrepo "github.com/brokermart/brokermart/internal/repo/wallet-repo"
	"github.com/brokermart/brokermart/internal/service/authservice"
	"github.com/brokermart/brokermart/internal/service/promotionservice"
	"github.com/brokermart/brokermart/internal/service/walletservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	BusinessRepo    promotionservice.BusinessRepo
	PromotionRepo   promotionservice.PromotionRepo
	ClaimRepo       promotionservice.ClaimRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		BusinessRepo:    businessrepo.New(conn),
		PromotionRepo:   promotionrepo.New(conn),
		ClaimRepo:       claimrepo.New(conn),
	}
}
