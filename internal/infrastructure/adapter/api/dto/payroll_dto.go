package dto

import (
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// PaySalaryRequest represents the payload for a salary payout
type PaySalaryRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// GiveBonusRequest represents the payload for a discretionary bonus
type GiveBonusRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// TransactionResponse represents one ledger entry in API responses
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	EmployeeID  uint64    `json:"employeeId"`
	GrossAmount string    `json:"grossAmount"`
	TaxAmount   string    `json:"taxAmount"`
	NetAmount   string    `json:"netAmount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a domain transaction to its API shape
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		EmployeeID:  transaction.EmployeeID,
		GrossAmount: entity.FormatMoney(transaction.Gross()),
		TaxAmount:   entity.FormatMoney(transaction.TaxAmount),
		NetAmount:   entity.FormatMoney(transaction.NetAmount),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// NewTransactionListResponse maps a slice of domain transactions
func NewTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, NewTransactionResponse(transaction))
	}
	return out
}
