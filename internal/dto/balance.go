package dto

import "time"

type BalanceResponseDTO struct {
	Current   float64 `json:"current" example:"500.5"`
	Earned    float64 `json:"earned" example:"1042"`
	Withdrawn float64 `json:"withdrawn" example:"541.5"`
}

type WithdrawRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"500"`
}

type TransactionResponseDTO struct {
	ID            int       `json:"id"`
	OrderID       *int      `json:"order_id,omitempty"`
	Type          string    `json:"type" example:"sale"`
	Amount        float64   `json:"amount" example:"350"`
	BalanceBefore float64   `json:"balance_before" example:"150"`
	BalanceAfter  float64   `json:"balance_after" example:"500"`
	CreatedAt     time.Time `json:"created_at"`
}
