package dto

import (
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
)

// CreateEmployeeRequest represents the payload for registering an employee
type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// UpdateTaxOverrideRequest toggles the per-employee withholding override.
// CustomTaxRate is required when the override is enabled.
type UpdateTaxOverrideRequest struct {
	UseCustomTax  bool    `json:"useCustomTax"`
	CustomTaxRate *string `json:"customTaxRate"`
}

// UpdateWalletRequest sets the employee's settlement wallet address
type UpdateWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	IsStreaming   bool      `json:"isStreaming"`
	UseCustomTax  bool      `json:"useCustomTax"`
	CustomTaxRate *string   `json:"customTaxRate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewEmployeeResponse maps a domain employee to its API shape
func NewEmployeeResponse(employee *entity.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            employee.ID,
		Name:          employee.Name,
		Email:         employee.Email,
		Role:          employee.Role,
		WalletAddress: employee.WalletAddress,
		IsStreaming:   employee.IsStreaming,
		UseCustomTax:  employee.UseCustomTax,
		CreatedAt:     employee.CreatedAt,
	}
	if employee.CustomTaxRate != nil {
		rate := employee.CustomTaxRate.String()
		resp.CustomTaxRate = &rate
	}
	return resp
}

// ProfileResponse is the self-service view of the authenticated employee.
// Employee is null for auth users without a payroll record.
type ProfileResponse struct {
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Employee    *EmployeeResponse `json:"employee"`
	TotalEarned string            `json:"totalEarned"`
}

// NewEmployeeListResponse maps a slice of domain employees
func NewEmployeeListResponse(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, NewEmployeeResponse(employee))
	}
	return out
}
