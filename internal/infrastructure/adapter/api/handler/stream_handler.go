package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	streamUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/stream"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// StreamHandler handles salary stream transitions
type StreamHandler struct {
	controller *streamUseCase.Controller
	logger     coreport.Logger
}

// NewStreamHandler creates a new stream handler instance
func NewStreamHandler(controller *streamUseCase.Controller, logger coreport.Logger) *StreamHandler {
	return &StreamHandler{
		controller: controller,
		logger:     logger,
	}
}

// Start handles POST /employees/:employeeId/stream/start
func (h *StreamHandler) Start(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	changed, err := h.controller.Start(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StreamStateResponse{
		EmployeeID:  employeeID,
		IsStreaming: true,
		Changed:     changed,
	})
}

// Pause handles POST /employees/:employeeId/stream/pause
func (h *StreamHandler) Pause(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	changed, err := h.controller.Pause(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StreamStateResponse{
		EmployeeID:  employeeID,
		IsStreaming: false,
		Changed:     changed,
	})
}
