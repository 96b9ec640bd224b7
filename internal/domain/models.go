package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type BusinessProfile struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Wallet struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Balance   float64   `db:"balance"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Transaction struct {
	ID          int            `db:"id"`
	UserID      int            `db:"user_id"`
	Amount      float64        `db:"amount"`
	Type        string         `db:"type"`
	Status      string         `db:"status"`
	Description string         `db:"description"`
	Reference   string         `db:"reference"`
	Metadata    map[string]any `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
}

type Promotion struct {
	ID            int       `db:"id"`
	BusinessID    int       `db:"business_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	IsActive      bool      `db:"is_active"`
	MaxClaims     int       `db:"max_claims"`
	CurrentClaims int       `db:"current_claims"`
	Points        int       `db:"points"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type PromotionClaim struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	PromotionID     int       `db:"promotion_id"`
	Points          int       `db:"points"`
	SharedCount     int       `db:"shared_count"`
	Status          string    `db:"status"`
	RejectionReason string    `db:"rejection_reason"`
	ClaimedAt       time.Time `db:"claimed_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
