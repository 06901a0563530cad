package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	reportingUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/reporting"
	treasuryUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/treasury"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// ReportHandler serves the dashboard and rollup endpoints
type ReportHandler struct {
	aggregator *reportingUseCase.Aggregator
	ledger     *treasuryUseCase.Ledger
	logger     coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(
	aggregator *reportingUseCase.Aggregator,
	ledger *treasuryUseCase.Ledger,
	logger coreport.Logger,
) *ReportHandler {
	return &ReportHandler{
		aggregator: aggregator,
		ledger:     ledger,
		logger:     logger,
	}
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	treasury, err := h.ledger.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPayout, err := h.aggregator.TotalPayout(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	totalTax, err := h.aggregator.TotalTaxCollected(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	activeStreams, err := h.aggregator.ActiveStreams(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		TreasuryBalance:   entity.FormatMoney(treasury.TotalBalance),
		TotalPayout:       entity.FormatMoney(totalPayout),
		TotalTaxCollected: entity.FormatMoney(totalTax),
		ActiveStreams:     activeStreams,
	})
}

// MonthlySummary handles GET /reports/monthly
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	rollups, err := h.aggregator.MonthlySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.MonthlyRollupResponse, 0, len(rollups))
	for _, rollup := range rollups {
		out = append(out, dto.MonthlyRollupResponse{
			Month: rollup.Month,
			Net:   entity.FormatMoney(rollup.Net),
			Tax:   entity.FormatMoney(rollup.Tax),
		})
	}

	c.JSON(http.StatusOK, out)
}

// TopEarners handles GET /reports/top-earners
func (h *ReportHandler) TopEarners(c *gin.Context) {
	earners, err := h.aggregator.TopEarners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.TopEarnerResponse, 0, len(earners))
	for _, earner := range earners {
		out = append(out, dto.TopEarnerResponse{
			EmployeeID: earner.EmployeeID,
			Name:       earner.Name,
			TotalNet:   entity.FormatMoney(earner.TotalNet),
		})
	}

	c.JSON(http.StatusOK, out)
}
