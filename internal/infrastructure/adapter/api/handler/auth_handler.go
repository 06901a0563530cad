package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	authUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/auth"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register. Self-registration always creates an
// employee-role user; admins are seeded at startup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, entity.RoleEmployee)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	token, principal, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Email: principal.Email,
		Role:  principal.Role,
	})
}
