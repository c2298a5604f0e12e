// internal/controller/user_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nakarin/storefront-backend/internal/model"
	"github.com/nakarin/storefront-backend/internal/repository"
)

type UserController struct {
	Repo   repository.UserRepositoryInterface
	Logger *zap.Logger
}

// CreateUser registers a new user. The password is hashed before it is
// persisted and the created record never includes it.
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Logger.Error("failed to hash password", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &model.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hash),
	}
	if err := c.Repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeMessage(w, http.StatusConflict, "username already taken")
			return
		}
		c.Logger.Error("failed to create user", zap.String("username", body.Username), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
