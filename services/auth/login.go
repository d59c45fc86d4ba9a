package auth

import (
	"fmt"
	"strings"
	"time"

	"weddingplanner/config"
	"weddingplanner/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func NewAuthService(operators []config.Operator, signer *utils.TokenSigner, ttl time.Duration) *DefaultAuthService {
	return &DefaultAuthService{Operators: operators, Signer: signer, TokenTTL: ttl}
}

func (s *DefaultAuthService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *DefaultAuthService) find(email string) (config.Operator, bool) {
	for _, op := range s.Operators {
		if strings.EqualFold(op.Email, email) {
			return op, true
		}
	}
	return config.Operator{}, false
}

// Login verifies the password and issues a token.
func (s *DefaultAuthService) Login(email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	op, ok := s.find(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := op.Role
	if role == "" {
		role = RoleUser
	}
	token, err := s.Signer.GenerateToken(op.Email, op.Email, role, s.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Login: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResponse{
		Token:     token,
		Email:     op.Email,
		Role:      role,
		Landing:   LandingFor(role),
		ExpiresAt: s.clock().Add(s.TokenTTL),
	}, nil
}

// Authenticate validates a bearer token.
func (s *DefaultAuthService) Authenticate(token string) (*utils.TokenClaims, error) {
	return s.Signer.ValidateToken(token)
}

// LandingFor returns the page an operator lands on after login.
func LandingFor(role string) string {
	if role == RoleAdministrator {
		return AdminLanding
	}
	return ClientLanding
}
