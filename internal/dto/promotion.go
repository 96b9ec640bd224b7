package dto

import "time"

type CreateBusinessRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Corner Cafe"`
}

type BusinessResponseDTO struct {
	ID   int    `json:"id" example:"3"`
	Name string `json:"name" example:"Corner Cafe"`
}

type CreatePromotionRequestDTO struct {
	Title       string    `json:"title" validate:"required" example:"Free coffee week"`
	Description string    `json:"description,omitempty" example:"One free coffee per customer"`
	StartDate   time.Time `json:"start_date" example:"2025-12-01T00:00:00Z"`
	EndDate     time.Time `json:"end_date" example:"2025-12-08T00:00:00Z"`
	IsActive    *bool     `json:"is_active,omitempty" example:"true"`
	MaxClaims   int       `json:"max_claims" example:"100"`
	Points      int       `json:"points" example:"50"`
}

type PromotionResponseDTO struct {
	ID            int       `json:"id" example:"5"`
	BusinessID    int       `json:"business_id" example:"3"`
	Title         string    `json:"title" example:"Free coffee week"`
	Description   string    `json:"description,omitempty" example:"One free coffee per customer"`
	StartDate     time.Time `json:"start_date" example:"2025-12-01T00:00:00Z"`
	EndDate       time.Time `json:"end_date" example:"2025-12-08T00:00:00Z"`
	IsActive      bool      `json:"is_active" example:"true"`
	MaxClaims     int       `json:"max_claims" example:"100"`
	CurrentClaims int       `json:"current_claims" example:"17"`
	Points        int       `json:"points" example:"50"`
}

type ClaimResponseDTO struct {
	ID              int       `json:"id" example:"11"`
	PromotionID     int       `json:"promotion_id" example:"5"`
	Points          int       `json:"points" example:"50"`
	Status          string    `json:"status" example:"PENDING"`
	RejectionReason string    `json:"rejection_reason,omitempty" example:"duplicate account"`
	ClaimedAt       time.Time `json:"claimed_at" example:"2025-12-02T10:00:00Z"`
}

type RejectClaimRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"duplicate account"`
}
