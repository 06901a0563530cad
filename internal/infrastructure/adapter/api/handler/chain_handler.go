package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/corepay/payroll-ledger/internal/infrastructure/config"
)

// payrollABI is the contract surface wallet clients need for streaming payouts
// and self-service withdrawal. Served alongside the address so frontends don't
// hardcode it.
var payrollABI = []string{
	"function getTreasuryBalance() view returns (uint256)",
	"function startStream(address _employee, uint256 _ratePerSecond) external",
	"function stopStream(address _employee) external",
	"function claimableAmount(address _employee) view returns (uint256)",
	"function withdraw() external",
	"function emergencyWithdraw() external",
	"receive() external payable",
}

// ChainHandler exposes on-chain settlement parameters to wallet clients
type ChainHandler struct {
	chainConfig config.ChainConfig
}

// NewChainHandler creates a new chain handler instance
func NewChainHandler(chainConfig config.ChainConfig) *ChainHandler {
	return &ChainHandler{chainConfig: chainConfig}
}

// GetConfig handles GET /blockchain/config
func (h *ChainHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ChainConfigResponse{
		RPCURL:          h.chainConfig.RPCURL,
		ContractAddress: h.chainConfig.ContractAddress,
		ABI:             payrollABI,
	})
}
