package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/dto"
	"github.com/brokermart/brokermart/pkg/auth"
	"github.com/brokermart/brokermart/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	AddFunds(ctx context.Context, userID int, amount float64) (*domain.Wallet, error)
	Transfer(ctx context.Context, senderID, recipientID int, amount float64, description string) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the wallet balance and points for the authenticated user. The wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current wallet state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		503	{object}	utils.Response			"Store unavailable"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletDTO(wallet))
}

// AddFunds godoc
//
//	@Summary		Add funds to wallet
//	@Description	Credit the authenticated user's wallet and record a deposit transaction.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddFundsRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.WalletResponseDTO	"Updated wallet state"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		503		{object}	utils.Response			"Store unavailable"
//	@Router			/api/user/wallet/add-funds [post]
func (h *WalletHandler) AddFunds(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddFundsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wallet, err := h.walletService.AddFunds(r.Context(), userID, req.Amount)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletDTO(wallet))
}

// Transfer godoc
//
//	@Summary		Transfer funds to another user
//	@Description	Move funds from the authenticated user's wallet to another user's wallet in a single atomic operation.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO		true	"Transfer payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Outgoing transaction record"
//	@Failure		400		{object}	utils.Response				"Invalid amount or recipient"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Recipient not found"
//	@Failure		409		{object}	utils.Response				"Insufficient funds"
//	@Failure		503		{object}	utils.Response				"Store unavailable"
//	@Router			/api/user/transactions/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	transaction, err := h.walletService.Transfer(r.Context(), userID, req.RecipientID, req.Amount, req.Description)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(transaction))
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Description	Retrieve the authenticated user's transaction history, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		503	{object}	utils.Response	"Store unavailable"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for i := range transactions {
		response = append(response, *toTransactionDTO(&transactions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWalletDTO(wallet *domain.Wallet) *dto.WalletResponseDTO {
	return &dto.WalletResponseDTO{
		ID:      wallet.ID,
		Balance: wallet.Balance,
		Points:  wallet.Points,
	}
}

func toTransactionDTO(transaction *domain.Transaction) *dto.TransactionResponseDTO {
	return &dto.TransactionResponseDTO{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Status:      transaction.Status,
		Description: transaction.Description,
		Reference:   transaction.Reference,
		Metadata:    transaction.Metadata,
		CreatedAt:   transaction.CreatedAt,
	}
}
