package dto

import (
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// DepositRequest represents the payload for funding the treasury
type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// WithdrawRequest represents the payload for withdrawing treasury funds
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TreasuryResponse represents the treasury state in API responses
type TreasuryResponse struct {
	TotalBalance   string     `json:"totalBalance"`
	OnchainBalance string     `json:"onchainBalance"`
	LastTxHash     string     `json:"lastTxHash,omitempty"`
	LastSyncedAt   *time.Time `json:"lastSyncedAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewTreasuryResponse maps the domain treasury to its API shape
func NewTreasuryResponse(treasury *entity.Treasury) TreasuryResponse {
	return TreasuryResponse{
		TotalBalance:   entity.FormatMoney(treasury.TotalBalance),
		OnchainBalance: entity.FormatMoney(treasury.OnchainBalance),
		LastTxHash:     treasury.LastTxHash,
		LastSyncedAt:   treasury.LastSyncedAt,
		UpdatedAt:      treasury.UpdatedAt,
	}
}
