package promotionservice

import (
	"context"
	"time"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/pkg/apperr"
	"go.uber.org/zap"
)

const (
	ClaimStatusPending  string = "PENDING"
	ClaimStatusApproved string = "APPROVED"
	ClaimStatusRejected string = "REJECTED"
)

type PromotionRepo interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int) (*domain.Promotion, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Promotion, error)
	ListActive(ctx context.Context) ([]domain.Promotion, error)
	IncrementClaims(ctx context.Context, id int) error
}

type ClaimRepo interface {
	Create(ctx context.Context, claim *domain.PromotionClaim) (*domain.PromotionClaim, error)
	FindByUserAndPromotion(ctx context.Context, userID, promotionID int) (*domain.PromotionClaim, error)
	GetByID(ctx context.Context, id int) (*domain.PromotionClaim, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PromotionClaim, error)
	UpdateStatus(ctx context.Context, id int, status, rejectionReason string) (*domain.PromotionClaim, error)
}

type BusinessRepo interface {
	Create(ctx context.Context, business *domain.BusinessProfile) (*domain.BusinessProfile, error)
	GetByID(ctx context.Context, id int) (*domain.BusinessProfile, error)
	GetByUserID(ctx context.Context, userID int) (*domain.BusinessProfile, error)
}

// WalletService awards claim points. Runs inside the claim transaction.
type WalletService interface {
	CreditPoints(ctx context.Context, userID, points int) error
}

type Notifier interface {
	PromotionClaimed(ctx context.Context, claim *domain.PromotionClaim) error
}

type PromotionInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	MaxClaims   int
	Points      int
}

type Service struct {
	promotionRepo PromotionRepo
	claimRepo     ClaimRepo
	businessRepo  BusinessRepo
	wallets       WalletService
	txManager     pg.TXManager
	notifier      Notifier
}

func New(promotionRepo PromotionRepo, claimRepo ClaimRepo, businessRepo BusinessRepo, wallets WalletService, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		claimRepo:     claimRepo,
		businessRepo:  businessRepo,
		wallets:       wallets,
		txManager:     txManager,
		notifier:      notifier,
	}
}

func (s *Service) RegisterBusiness(ctx context.Context, userID int, name string) (*domain.BusinessProfile, error) {
	if name == "" {
		return nil, apperr.New(apperr.KindValidation, "invalid_business_name", "business name is required")
	}
	existing, err := s.businessRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to check business profile", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "business_exists", "you already have a business profile")
	}

	business, err := s.businessRepo.Create(ctx, &domain.BusinessProfile{UserID: userID, Name: name})
	if err != nil {
		zap.L().Error("failed to create business profile", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	zap.L().Info("business profile registered", zap.Int("userID", userID), zap.Int("businessID", business.ID))
	return business, nil
}

func (s *Service) CreatePromotion(ctx context.Context, ownerUserID int, input PromotionInput) (*domain.Promotion, error) {
	if input.Title == "" {
		return nil, apperr.New(apperr.KindValidation, "invalid_title", "promotion title is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, apperr.ErrInvalidClaimWindow
	}
	if input.MaxClaims <= 0 {
		return nil, apperr.New(apperr.KindValidation, "invalid_max_claims", "maximum claims must be positive")
	}
	if input.Points < 0 {
		return nil, apperr.New(apperr.KindValidation, "invalid_points", "points cannot be negative")
	}

	business, err := s.businessRepo.GetByUserID(ctx, ownerUserID)
	if err != nil {
		zap.L().Error("failed to resolve business profile", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if business == nil {
		return nil, apperr.ErrBusinessRequired
	}

	promotion, err := s.promotionRepo.Create(ctx, &domain.Promotion{
		BusinessID:  business.ID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    input.IsActive,
		MaxClaims:   input.MaxClaims,
		Points:      input.Points,
	})
	if err != nil {
		zap.L().Error("failed to create promotion", zap.Error(err))
		return nil, apperr.FromStore(err)
	}

	zap.L().Info("promotion created", zap.Int("promotionID", promotion.ID), zap.Int("businessID", business.ID))
	return promotion, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Promotion, error) {
	promotions, err := s.promotionRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list promotions", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	return promotions, nil
}

func (s *Service) GetPromotion(ctx context.Context, id int) (*domain.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get promotion", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if promotion == nil {
		return nil, apperr.ErrPromotionNotFound
	}
	return promotion, nil
}

// Claim redeems the promotion for the user. The promotion row is locked for
// the whole transaction, so the eligibility checks, the counter increment,
// the claim insert and the points award commit as one unit; two claims racing
// for the last slot serialize and the loser sees the updated counter.
func (s *Service) Claim(ctx context.Context, userID, promotionID int) (*domain.PromotionClaim, error) {
	var claim *domain.PromotionClaim
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		promotion, err := s.promotionRepo.GetByIDForUpdate(ctx, promotionID)
		if err != nil {
			return err
		}
		if promotion == nil {
			return apperr.ErrPromotionNotFound
		}

		now := time.Now()
		if !promotion.IsActive || now.Before(promotion.StartDate) || now.After(promotion.EndDate) {
			return apperr.ErrPromotionInactive
		}

		existing, err := s.claimRepo.FindByUserAndPromotion(ctx, userID, promotionID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.ErrAlreadyClaimed
		}

		if promotion.CurrentClaims >= promotion.MaxClaims {
			return apperr.ErrLimitReached
		}

		if err := s.promotionRepo.IncrementClaims(ctx, promotionID); err != nil {
			return err
		}
		claim, err = s.claimRepo.Create(ctx, &domain.PromotionClaim{
			UserID:      userID,
			PromotionID: promotionID,
			Points:      promotion.Points,
			Status:      ClaimStatusPending,
		})
		if err != nil {
			return err
		}
		return s.wallets.CreditPoints(ctx, userID, promotion.Points)
	})
	if err != nil {
		zap.L().Error("claim failed", zap.Int("userID", userID), zap.Int("promotionID", promotionID), zap.Error(err))
		return nil, apperr.FromStore(err)
	}

	if err := s.notifier.PromotionClaimed(ctx, claim); err != nil {
		zap.L().Warn("claim notification failed", zap.Error(err))
	}

	zap.L().Info("promotion claimed", zap.Int("userID", userID), zap.Int("promotionID", promotionID))
	return claim, nil
}

// Approve transitions a pending claim to approved. Re-approving an approved
// claim is a no-op; a rejected claim is terminal.
func (s *Service) Approve(ctx context.Context, claimID, approverUserID int) (*domain.PromotionClaim, error) {
	claim, err := s.authorizeClaimAction(ctx, claimID, approverUserID)
	if err != nil {
		return nil, err
	}

	switch claim.Status {
	case ClaimStatusApproved:
		return claim, nil
	case ClaimStatusRejected:
		return nil, apperr.ErrClaimFinalized
	}

	updated, err := s.claimRepo.UpdateStatus(ctx, claimID, ClaimStatusApproved, "")
	if err != nil {
		zap.L().Error("failed to approve claim", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if updated == nil {
		return s.settledElsewhere(ctx, claimID, ClaimStatusApproved)
	}
	zap.L().Info("claim approved", zap.Int("claimID", claimID), zap.Int("approverID", approverUserID))
	return updated, nil
}

// Reject transitions a pending claim to rejected. Re-rejecting is a no-op; an
// approved claim is terminal.
func (s *Service) Reject(ctx context.Context, claimID, approverUserID int, reason string) (*domain.PromotionClaim, error) {
	claim, err := s.authorizeClaimAction(ctx, claimID, approverUserID)
	if err != nil {
		return nil, err
	}

	switch claim.Status {
	case ClaimStatusRejected:
		return claim, nil
	case ClaimStatusApproved:
		return nil, apperr.ErrClaimFinalized
	}

	updated, err := s.claimRepo.UpdateStatus(ctx, claimID, ClaimStatusRejected, reason)
	if err != nil {
		zap.L().Error("failed to reject claim", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if updated == nil {
		return s.settledElsewhere(ctx, claimID, ClaimStatusRejected)
	}
	zap.L().Info("claim rejected", zap.Int("claimID", claimID), zap.Int("approverID", approverUserID))
	return updated, nil
}

func (s *Service) GetUserClaims(ctx context.Context, userID int) ([]domain.PromotionClaim, error) {
	claims, err := s.claimRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch claims", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	return claims, nil
}

// settledElsewhere resolves the race where another reviewer finalized the
// claim between our read and the guarded update. Same outcome stays an
// idempotent no-op, the opposite outcome is a conflict.
func (s *Service) settledElsewhere(ctx context.Context, claimID int, wantStatus string) (*domain.PromotionClaim, error) {
	current, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		zap.L().Error("failed to re-read settled claim", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if current == nil {
		return nil, apperr.ErrClaimNotFound
	}
	if current.Status == wantStatus {
		return current, nil
	}
	return nil, apperr.ErrClaimFinalized
}

// authorizeClaimAction loads the claim and verifies the acting user owns the
// promotion's business.
func (s *Service) authorizeClaimAction(ctx context.Context, claimID, actorUserID int) (*domain.PromotionClaim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		zap.L().Error("failed to get claim", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if claim == nil {
		return nil, apperr.ErrClaimNotFound
	}

	promotion, err := s.promotionRepo.GetByID(ctx, claim.PromotionID)
	if err != nil {
		zap.L().Error("failed to get promotion for claim", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if promotion == nil {
		return nil, apperr.ErrPromotionNotFound
	}

	business, err := s.businessRepo.GetByID(ctx, promotion.BusinessID)
	if err != nil {
		zap.L().Error("failed to get business for promotion", zap.Error(err))
		return nil, apperr.FromStore(err)
	}
	if business == nil || business.UserID != actorUserID {
		return nil, apperr.ErrNotPromotionOwner
	}
	return claim, nil
}
