package usecase

import (
	"context"
	"strings"

	"hutbook/internal/pkg/config"
	"hutbook/internal/pkg/errs"
	"hutbook/internal/pkg/jwt"
	"hutbook/internal/pkg/password"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errs.New("invalid credentials")

type AuthUseCase interface {
	Login(ctx context.Context, email, pass string) (string, error)
}

// TokenValidator is the slice of auth the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// AuthUsecase authenticates the single operator account configured via
// environment and issues admin tokens for the management endpoints.
type AuthUsecase struct {
	admin   config.AdminConfig
	jwt     *jwt.Service
	adminID uuid.UUID
}

func NewAuthUsecase(cfg config.AdminConfig, jwtService *jwt.Service) *AuthUsecase {
	return &AuthUsecase{
		admin: cfg,
		jwt:   jwtService,
		// Stable per-process subject; the operator is not a DB row.
		adminID: uuid.New(),
	}
}

func (u *AuthUsecase) Login(ctx context.Context, email, pass string) (string, error) {
	if !strings.EqualFold(email, u.admin.Email) {
		return "", ErrInvalidCredentials
	}
	if err := password.ComparePassword(u.admin.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(u.adminID, RoleAdmin)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}

func (u *AuthUsecase) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return u.jwt.ValidateToken(tokenString)
}
