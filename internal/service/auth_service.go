// internal/service/auth_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/model"
	"github.com/nakarin/storefront-backend/internal/repository"
)

// AuthService issues, revokes and checks opaque bearer tokens backed by the
// sessions table.
type AuthService struct {
	UserRepo    repository.UserRepositoryInterface
	SessionRepo repository.SessionRepositoryInterface
	TokenTTL    time.Duration
}

// Login verifies the credentials and issues a new token. Unknown usernames
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	user, err := s.UserRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	session := &model.Session{
		Token:     token,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(s.ttl()),
	}
	if err := s.SessionRepo.Save(session); err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the token if one was presented. It never fails from the
// caller's point of view: revoking an unknown or expired token is a no-op.
func (s *AuthService) Logout(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	_ = s.SessionRepo.DeleteByToken(token)
}

// Verify resolves a bearer token to its username, or ErrInvalidToken.
func (s *AuthService) Verify(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", apperrors.ErrInvalidToken
	}
	session, err := s.SessionRepo.GetByToken(token)
	if err != nil {
		return "", err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return "", apperrors.ErrInvalidToken
	}
	return session.Username, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
