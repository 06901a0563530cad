package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	payrollUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/payroll"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// PayrollHandler handles payout HTTP requests
type PayrollHandler struct {
	engine *payrollUseCase.Engine
	logger coreport.Logger
}

// NewPayrollHandler creates a new payroll handler instance
func NewPayrollHandler(engine *payrollUseCase.Engine, logger coreport.Logger) *PayrollHandler {
	return &PayrollHandler{
		engine: engine,
		logger: logger,
	}
}

// PaySalary handles POST /employees/:employeeId/salary
func (h *PayrollHandler) PaySalary(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	var req dto.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	gross, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	description := req.Description
	if description == "" {
		description = "Salary payment"
	}

	transaction, err := h.engine.PaySalary(c.Request.Context(), employeeID, gross, description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// GiveBonus handles POST /employees/:employeeId/bonus
func (h *PayrollHandler) GiveBonus(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	var req dto.GiveBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	gross, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	transaction, err := h.engine.GiveBonus(c.Request.Context(), employeeID, gross, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}
