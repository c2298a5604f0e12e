// internal/repository/session_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nakarin/storefront-backend/internal/model"
)

// SessionRepositoryInterface defines the token store used by auth.
type SessionRepositoryInterface interface {
	Save(s *model.Session) error
	GetByToken(token string) (*model.Session, error)
	DeleteByToken(token string) error
}

// SessionRepository is the concrete GORM implementation
type SessionRepository struct {
	DB *gorm.DB
}

// Save inserts a session row for a freshly issued token.
func (r *SessionRepository) Save(s *model.Session) error {
	return r.DB.Create(s).Error
}

// GetByToken fetches a session by token. Returns (nil, nil) when the token
// is unknown; expiry is checked by the caller.
func (r *SessionRepository) GetByToken(token string) (*model.Session, error) {
	var s model.Session
	if err := r.DB.First(&s, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// DeleteByToken revokes a token. Deleting an unknown token is not an error,
// which is what keeps logout idempotent.
func (r *SessionRepository) DeleteByToken(token string) error {
	return r.DB.Delete(&model.Session{}, "token = ?", token).Error
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)
