package service

import (
	"crypto/subtle"

	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/pkg/jwt"
)

// AuthService authenticates admin editors against the configured
// credentials and issues access tokens.
type AuthService interface {
	Login(req *domain.LoginRequest) (*domain.LoginResponse, error)
}

type authService struct {
	jwtManager    *jwt.Manager
	adminUser     string
	adminPassword string
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtManager *jwt.Manager, adminUser, adminPassword string) AuthService {
	return &authService{
		jwtManager:    jwtManager,
		adminUser:     adminUser,
		adminPassword: adminPassword,
	}
}

// Login verifies the credentials and returns a signed token.
func (s *authService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(req.Username, "admin")
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtManager.Expiry().Seconds()),
	}, nil
}
