package dto

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries a self-registration. Role defaults to employee;
// an admin role cannot be requested through this endpoint.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterResponse confirms the created identity
type RegisterResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse carries the signed token and the authenticated identity
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
