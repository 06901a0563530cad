package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	settingsUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/settings"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// SettingsHandler handles company settings and tax slab HTTP requests
type SettingsHandler struct {
	settingsService *settingsUseCase.Service
	logger          coreport.Logger
}

// NewSettingsHandler creates a new settings handler instance
func NewSettingsHandler(settingsService *settingsUseCase.Service, logger coreport.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	companySettings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsResponse(companySettings))
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	rate, err := entity.ParseAmount(req.DefaultTaxRate)
	if err != nil {
		respondError(c, err)
		return
	}

	companySettings, err := h.settingsService.SetDefaultTaxRate(c.Request.Context(), rate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsResponse(companySettings))
}

// ListSlabs handles GET /settings/tax-slabs
func (h *SettingsHandler) ListSlabs(c *gin.Context) {
	slabs, err := h.settingsService.ListSlabs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.TaxSlabResponse, 0, len(slabs))
	for _, slab := range slabs {
		out = append(out, dto.NewTaxSlabResponse(slab))
	}

	c.JSON(http.StatusOK, out)
}

// CreateSlab handles POST /settings/tax-slabs
func (h *SettingsHandler) CreateSlab(c *gin.Context) {
	var req dto.CreateTaxSlabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	minIncome, err := entity.ParseAmount(req.MinIncome)
	if err != nil {
		respondError(c, err)
		return
	}

	var maxIncome *decimal.Decimal
	if req.MaxIncome != nil {
		parsed, err := entity.ParseAmount(*req.MaxIncome)
		if err != nil {
			respondError(c, err)
			return
		}
		maxIncome = &parsed
	}

	rate, err := entity.ParseAmount(req.TaxRate)
	if err != nil {
		respondError(c, err)
		return
	}

	slab, err := h.settingsService.CreateSlab(c.Request.Context(), minIncome, maxIncome, rate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTaxSlabResponse(slab))
}

// DeleteSlab handles DELETE /settings/tax-slabs/:slabId
func (h *SettingsHandler) DeleteSlab(c *gin.Context) {
	slabID, ok := parseIDParam(c, "slabId")
	if !ok {
		return
	}

	if err := h.settingsService.DeleteSlab(c.Request.Context(), slabID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
