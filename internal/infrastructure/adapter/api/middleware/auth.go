package middleware

import (
	"net/http"
	"strings"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	domainerr "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PrincipalKey is the context key under which the authenticated principal is stored
const PrincipalKey = "principal"

// Authenticate verifies the bearer token and stores the principal in the
// request context. Requests without a valid token are rejected.
func Authenticate(tokens coreport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		principal, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected invalid token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireAdmin rejects requests whose principal lacks the admin role. Must run
// after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Admin role required",
			})
			return
		}
		c.Next()
	}
}

// PrincipalFromContext extracts the authenticated principal set by Authenticate
func PrincipalFromContext(c *gin.Context) (entity.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}
