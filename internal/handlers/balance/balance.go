package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	balanceservice "github.com/atlanticleather/storefront/internal/service/balanceservice"
	"github.com/atlanticleather/storefront/pkg/auth"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, adminID int) (*domain.Balance, error)
	Withdraw(ctx context.Context, adminID int, amount float64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, adminID, limit int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary	Get the acting admin's balance
//	@Tags		Balance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), adminID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.CurrentBalance,
		Earned:    balance.TotalEarned,
		Withdrawn: balance.TotalWithdrawn,
	})
}

// Withdraw godoc
//
//	@Summary	Withdraw from the acting admin's balance
//	@Tags		Balance
//	@Accept		json
//	@Produce	json
//	@Param		withdrawal	body	dto.WithdrawRequestDTO	true	"Amount to withdraw"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	402	{object}	utils.Response	"Insufficient balance"
//	@Router		/api/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.balanceService.Withdraw(r.Context(), adminID, req.Amount)
	if err != nil {
		if errors.Is(err, balanceservice.ErrInsufficientBalance) {
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(transaction))
}

func (h *BalanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	transactions, err := h.balanceService.ListTransactions(r.Context(), adminID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, toTransactionDTO(&transaction))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(transaction *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:            transaction.ID,
		OrderID:       transaction.OrderID,
		Type:          transaction.Type,
		Amount:        transaction.Amount,
		BalanceBefore: transaction.BalanceBefore,
		BalanceAfter:  transaction.BalanceAfter,
		CreatedAt:     transaction.CreatedAt,
	}
}
