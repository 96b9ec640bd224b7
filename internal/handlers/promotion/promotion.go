package promotion

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/dto"
	promotionservice "github.com/brokermart/brokermart/internal/service/promotionservice"
	"github.com/brokermart/brokermart/pkg/auth"
	"github.com/brokermart/brokermart/pkg/utils"
)

type Service interface {
	RegisterBusiness(ctx context.Context, userID int, name string) (*domain.BusinessProfile, error)
	CreatePromotion(ctx context.Context, ownerUserID int, input promotionservice.PromotionInput) (*domain.Promotion, error)
	ListActive(ctx context.Context) ([]domain.Promotion, error)
	GetPromotion(ctx context.Context, id int) (*domain.Promotion, error)
	Claim(ctx context.Context, userID, promotionID int) (*domain.PromotionClaim, error)
	Approve(ctx context.Context, claimID, approverUserID int) (*domain.PromotionClaim, error)
	Reject(ctx context.Context, claimID, approverUserID int, reason string) (*domain.PromotionClaim, error)
	GetUserClaims(ctx context.Context, userID int) ([]domain.PromotionClaim, error)
}

type PromotionHandler struct {
	promotionService Service
}

func New(promotionService Service) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

// RegisterBusiness godoc
//
//	@Summary		Register a business profile
//	@Description	Create a business profile for the authenticated user so they can publish promotions.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBusinessRequestDTO	true	"Business payload"
//	@Success		200		{object}	dto.BusinessResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Business already registered"
//	@Router			/api/business [post]
func (h *PromotionHandler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBusinessRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	business, err := h.promotionService.RegisterBusiness(r.Context(), userID, req.Name)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BusinessResponseDTO{
		ID:   business.ID,
		Name: business.Name,
	})
}

// CreatePromotion godoc
//
//	@Summary		Create a promotion
//	@Description	Publish a new promotion for the authenticated business owner.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromotionRequestDTO	true	"Promotion payload"
//	@Success		200		{object}	dto.PromotionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid promotion attributes"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Business profile required"
//	@Router			/api/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePromotionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Promotions launch active unless the owner explicitly holds them back.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	promotion, err := h.promotionService.CreatePromotion(r.Context(), userID, promotionservice.PromotionInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    isActive,
		MaxClaims:   req.MaxClaims,
		Points:      req.Points,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPromotionDTO(promotion))
}

// ListActive godoc
//
//	@Summary		List active promotions
//	@Description	Retrieve promotions that are active and within their claim window.
//	@Tags			Promotions
//	@Produce		json
//	@Success		200	{array}		dto.PromotionResponseDTO
//	@Failure		503	{object}	utils.Response	"Store unavailable"
//	@Router			/api/promotions [get]
func (h *PromotionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.promotionService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	response := make([]dto.PromotionResponseDTO, 0, len(promotions))
	for i := range promotions {
		response = append(response, *toPromotionDTO(&promotions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPromotion godoc
//
//	@Summary		Get a promotion
//	@Description	Retrieve a single promotion by its identifier.
//	@Tags			Promotions
//	@Produce		json
//	@Param			id	path		int	true	"Promotion ID"
//	@Success		200	{object}	dto.PromotionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid promotion ID"
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Router			/api/promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid promotion id")
		return
	}
	promotion, err := h.promotionService.GetPromotion(r.Context(), id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPromotionDTO(promotion))
}

// Claim godoc
//
//	@Summary		Claim a promotion
//	@Description	Claim the promotion for the authenticated user. Each user may claim a promotion once and claims stop at the promotion limit.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Promotion ID"
//	@Success		200	{object}	dto.ClaimResponseDTO
//	@Failure		400	{object}	utils.Response	"Promotion not active"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Failure		409	{object}	utils.Response	"Already claimed or limit reached"
//	@Failure		503	{object}	utils.Response	"Store unavailable"
//	@Router			/api/promotions/{id}/claim [post]
func (h *PromotionHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid promotion id")
		return
	}
	claim, err := h.promotionService.Claim(r.Context(), userID, id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toClaimDTO(claim))
}

// Approve godoc
//
//	@Summary		Approve a claim
//	@Description	Approve a pending claim. Only the owner of the promotion's business may approve. Approving an approved claim is a no-op.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Claim ID"
//	@Success		200	{object}	dto.ClaimResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the promotion owner"
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		409	{object}	utils.Response	"Claim already finalized"
//	@Router			/api/promotion-claims/{id}/approve [post]
func (h *PromotionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid claim id")
		return
	}
	claim, err := h.promotionService.Approve(r.Context(), id, userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toClaimDTO(claim))
}

// Reject godoc
//
//	@Summary		Reject a claim
//	@Description	Reject a pending claim with an optional reason. Only the owner of the promotion's business may reject. Rejecting a rejected claim is a no-op.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Claim ID"
//	@Param			request	body		dto.RejectClaimRequestDTO	false	"Rejection payload"
//	@Success		200		{object}	dto.ClaimResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the promotion owner"
//	@Failure		404		{object}	utils.Response	"Claim not found"
//	@Failure		409		{object}	utils.Response	"Claim already finalized"
//	@Router			/api/promotion-claims/{id}/reject [post]
func (h *PromotionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid claim id")
		return
	}
	var req dto.RejectClaimRequestDTO
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	claim, err := h.promotionService.Reject(r.Context(), id, userID, req.Reason)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toClaimDTO(claim))
}

// GetUserClaims godoc
//
//	@Summary		List current user claims
//	@Description	Retrieve the authenticated user's promotion claims, newest first.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ClaimResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		503	{object}	utils.Response	"Store unavailable"
//	@Router			/api/user/claims [get]
func (h *PromotionHandler) GetUserClaims(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	claims, err := h.promotionService.GetUserClaims(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	response := make([]dto.ClaimResponseDTO, 0, len(claims))
	for i := range claims {
		response = append(response, *toClaimDTO(&claims[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPromotionDTO(promotion *domain.Promotion) *dto.PromotionResponseDTO {
	return &dto.PromotionResponseDTO{
		ID:            promotion.ID,
		BusinessID:    promotion.BusinessID,
		Title:         promotion.Title,
		Description:   promotion.Description,
		StartDate:     promotion.StartDate,
		EndDate:       promotion.EndDate,
		IsActive:      promotion.IsActive,
		MaxClaims:     promotion.MaxClaims,
		CurrentClaims: promotion.CurrentClaims,
		Points:        promotion.Points,
	}
}

func toClaimDTO(claim *domain.PromotionClaim) *dto.ClaimResponseDTO {
	return &dto.ClaimResponseDTO{
		ID:              claim.ID,
		PromotionID:     claim.PromotionID,
		Points:          claim.Points,
		Status:          claim.Status,
		RejectionReason: claim.RejectionReason,
		ClaimedAt:       claim.ClaimedAt,
	}
}
