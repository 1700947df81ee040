package admin

import (
	"context"
	"strings"

	"github.com/sinding/booking-api/internal/pkg/jwt"
	"github.com/sinding/booking-api/internal/pkg/logger"
	"github.com/sinding/booking-api/internal/pkg/password"
)

// unusedHash keeps failed logins for unknown emails as slow as real ones.
const unusedHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5Zj1H8p1r9rVf6cqkBZ0vUq4fSx3m8e"

// Service authenticates the studio operator against configured credentials
type Service struct {
	email        string
	passwordHash string
	jwtSvc       *jwt.Service
}

// NewService creates admin service. An empty passwordHash disables login.
func NewService(email, passwordHash string, jwtSvc *jwt.Service) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		jwtSvc:       jwtSvc,
	}
}

// Login verifies the credentials and issues an access token
func (s *Service) Login(ctx context.Context, email, pass string) (*LoginResponse, error) {
	if s.passwordHash == "" {
		return nil, ErrLoginDisabled
	}

	email = strings.ToLower(strings.TrimSpace(email))
	hash := s.passwordHash
	if email != s.email {
		hash = unusedHash
	}

	if !password.Verify(pass, hash) || email != s.email {
		logger.LogWarn(ctx, "Operator login failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(s.email, jwt.RoleOperator)
	if err != nil {
		return nil, err
	}

	logger.LogInfo(ctx, "Operator logged in", "email", s.email)
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
