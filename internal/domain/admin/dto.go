package admin

import "time"

// LoginRequest for operator login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse carries the operator access token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MeResponse describes the authenticated operator
type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
