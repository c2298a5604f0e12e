// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/service"
)

type AuthController struct {
	Auth   *service.AuthService
	Logger *zap.Logger
}

// Login checks the credentials and returns a fresh bearer token. Every
// failure mode is a 401; the caller learns nothing about which part failed.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := c.Auth.Login(body.Username, body.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.Logger.Error("login failed", zap.String("username", body.Username), zap.Error(err))
		}
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout revokes the presented token, if any, and always reports success.
// Calling it without a token or with an already-revoked one is fine.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Auth.Logout(BearerToken(r))
	writeMessage(w, http.StatusOK, "logged out")
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header,
// or returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
