package login

import "github.com/m04kA/office-hours-service/internal/service/auth"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToServiceRequest() *auth.LoginRequest {
	return &auth.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}
