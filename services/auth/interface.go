package auth

import (
	"errors"
	"time"

	"weddingplanner/config"
	"weddingplanner/utils"
)

const (
	RoleAdministrator = "administrator"
	RoleUser          = "user"

	AdminLanding  = "/admin"
	ClientLanding = "/client"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Authenticate(token string) (*utils.TokenClaims, error)
}

// LoginResponse is returned to the login page.
type LoginResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Landing   string    `json:"landing"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DefaultAuthService checks credentials against configured operators.
type DefaultAuthService struct {
	Operators []config.Operator
	Signer    *utils.TokenSigner
	TokenTTL  time.Duration
	now       func() time.Time
}
