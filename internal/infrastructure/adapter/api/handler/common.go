package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/corepay/payroll-ledger/internal/domain/error"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case domainerr.IsNotFoundError(err) || errors.Is(err, domainerr.ErrTaxSlabNotFound):
		return http.StatusNotFound
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrDuplicateEmail) ||
		errors.Is(err, domainerr.ErrDuplicateUser) ||
		errors.Is(err, domainerr.ErrEmployeeHasLedgerHistory):
		return http.StatusConflict
	case domainerr.IsInvalidAmountError(err) ||
		domainerr.IsStreamNotActiveError(err) ||
		errors.Is(err, domainerr.ErrInvalidTaxRate) ||
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response for a domain error
func respondError(c *gin.Context, err error) {
	status := httpStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 with the given message
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

// parseIDParam extracts a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}
