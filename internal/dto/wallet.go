package dto

import "time"

type WalletResponseDTO struct {
	ID      int     `json:"id" example:"1"`
	Balance float64 `json:"balance" example:"500.5"`
	Points  int     `json:"points" example:"120"`
}

type AddFundsRequestDTO struct {
	Amount float64 `json:"amount" example:"100.5"`
}

type TransferRequestDTO struct {
	RecipientID int     `json:"recipient_id" example:"42"`
	Amount      float64 `json:"amount" example:"25"`
	Description string  `json:"description,omitempty" example:"lunch split"`
}

type TransactionResponseDTO struct {
	ID          int            `json:"id" example:"7"`
	Amount      float64        `json:"amount" example:"-25"`
	Type        string         `json:"type" example:"TRANSFER_OUT"`
	Status      string         `json:"status" example:"COMPLETED"`
	Description string         `json:"description,omitempty" example:"Transfer to user 42"`
	Reference   string         `json:"reference,omitempty" example:"c1a2b3"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}
