package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	treasuryUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/treasury"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// TreasuryHandler handles treasury HTTP requests
type TreasuryHandler struct {
	ledger *treasuryUseCase.Ledger
	logger coreport.Logger
}

// NewTreasuryHandler creates a new treasury handler instance
func NewTreasuryHandler(ledger *treasuryUseCase.Ledger, logger coreport.Logger) *TreasuryHandler {
	return &TreasuryHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Get handles GET /treasury
func (h *TreasuryHandler) Get(c *gin.Context) {
	treasury, err := h.ledger.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTreasuryResponse(treasury))
}

// Deposit handles POST /treasury/deposit
func (h *TreasuryHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	treasury, err := h.ledger.Deposit(c.Request.Context(), amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTreasuryResponse(treasury))
}

// Withdraw handles POST /treasury/withdraw
func (h *TreasuryHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	treasury, err := h.ledger.Withdraw(c.Request.Context(), amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTreasuryResponse(treasury))
}
