package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	employeeUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/employee"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/middleware"
)

// EmployeeHandler handles employee lifecycle HTTP requests
type EmployeeHandler struct {
	employeeService *employeeUseCase.Service
	logger          coreport.Logger
}

// NewEmployeeHandler creates a new employee handler instance
func NewEmployeeHandler(employeeService *employeeUseCase.Service, logger coreport.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEmployeeResponse(employee))
}

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEmployeeListResponse(employees))
}

// Get handles GET /employees/:employeeId
func (h *EmployeeHandler) Get(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEmployeeResponse(employee))
}

// Transactions handles GET /employees/:employeeId/transactions
func (h *EmployeeHandler) Transactions(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	transactions, err := h.employeeService.Transactions(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// MyProfile handles GET /me/profile. The employee record is resolved through
// the authenticated principal's email.
func (h *EmployeeHandler) MyProfile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondError(c, errs.ErrInvalidCredentials)
		return
	}

	profile, err := h.employeeService.ProfileByEmail(c.Request.Context(), principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ProfileResponse{
		Email:       principal.Email,
		Role:        principal.Role,
		TotalEarned: entity.FormatMoney(profile.TotalEarned),
	}
	if profile.Employee != nil {
		employee := dto.NewEmployeeResponse(profile.Employee)
		resp.Employee = &employee
	}

	c.JSON(http.StatusOK, resp)
}

// MyTransactions handles GET /me/transactions
func (h *EmployeeHandler) MyTransactions(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondError(c, errs.ErrInvalidCredentials)
		return
	}

	transactions, err := h.employeeService.TransactionsByEmail(c.Request.Context(), principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// UpdateTaxOverride handles PUT /employees/:employeeId/tax
func (h *EmployeeHandler) UpdateTaxOverride(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	var req dto.UpdateTaxOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	var rate *decimal.Decimal
	if req.CustomTaxRate != nil {
		parsed, err := entity.ParseAmount(*req.CustomTaxRate)
		if err != nil {
			respondError(c, err)
			return
		}
		rate = &parsed
	}

	employee, err := h.employeeService.UpdateTaxOverride(c.Request.Context(), employeeID, req.UseCustomTax, rate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEmployeeResponse(employee))
}

// UpdateWallet handles PUT /employees/:employeeId/wallet
func (h *EmployeeHandler) UpdateWallet(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	employee, err := h.employeeService.UpdateWallet(c.Request.Context(), employeeID, req.WalletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEmployeeResponse(employee))
}

// Delete handles DELETE /employees/:employeeId. Deleting an employee with
// recorded ledger history requires force=true.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	force := c.Query("force") == "true"

	if err := h.employeeService.Delete(c.Request.Context(), employeeID, force); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
