package apperr

import "fmt"

// Kind groups errors by how the caller should react to them.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindUnavailable   Kind = "unavailable"
)

// Error is a business-rule violation with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Newf(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidAmount     = New(KindValidation, "invalid_amount", "amount must be a positive number")
	ErrSelfTransfer      = New(KindValidation, "self_transfer", "cannot transfer funds to yourself")
	ErrRecipientNotFound = New(KindNotFound, "recipient_not_found", "recipient not found")
	ErrWalletNotFound    = New(KindNotFound, "wallet_not_found", "wallet not found")
	ErrInsufficientFunds = New(KindConflict, "insufficient_funds", "insufficient funds")

	ErrBusinessRequired   = New(KindAuthorization, "business_required", "a business profile is required")
	ErrPromotionNotFound  = New(KindNotFound, "promotion_not_found", "promotion not found")
	ErrPromotionInactive  = New(KindConflict, "promotion_inactive", "this promotion is not active")
	ErrAlreadyClaimed     = New(KindConflict, "already_claimed", "you have already claimed this promotion")
	ErrLimitReached       = New(KindConflict, "limit_reached", "promotion claim limit reached")
	ErrClaimNotFound      = New(KindNotFound, "claim_not_found", "promotion claim not found")
	ErrNotPromotionOwner  = New(KindAuthorization, "not_promotion_owner", "only the business owner can manage claims")
	ErrClaimFinalized     = New(KindConflict, "claim_finalized", "claim has already been finalized")
	ErrInvalidClaimWindow = New(KindValidation, "invalid_claim_window", "promotion end date must be after start date")

	ErrStoreUnavailable = New(KindUnavailable, "store_unavailable", "storage temporarily unavailable, retry later")
)
