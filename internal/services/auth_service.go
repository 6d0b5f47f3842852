package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/supermax-promo/cupom-backend/internal/config"
)

// AuthServiceImpl implements the single-credential admin gate. The
// store runs one admin area behind one password; the bcrypt hash lives
// in configuration, not in the database.
type AuthServiceImpl struct {
	cfg *config.Config
}

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{cfg: cfg}
}

// Login compares the submitted password against the configured bcrypt
// hash and returns a signed admin session token.
func (s *AuthServiceImpl) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		zap.L().Warn("admin login rejected")
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Second * time.Duration(s.cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", err
	}

	zap.L().Info("admin login succeeded")
	return signed, nil
}
