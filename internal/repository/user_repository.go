// internal/repository/user_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/nakarin/storefront-backend/internal/model"
)

// UserRepositoryInterface defines methods used by registration and login.
type UserRepositoryInterface interface {
	Create(u *model.User) error
	GetByUsername(username string) (*model.User, error)
}

// UserRepository is the concrete GORM implementation
type UserRepository struct {
	DB *gorm.DB
}

// Create inserts a user record. A duplicate username surfaces as
// gorm.ErrDuplicatedKey for the caller to classify.
func (r *UserRepository) Create(u *model.User) error {
	return r.DB.Create(u).Error
}

// GetByUsername fetches a user by username. gorm.ErrRecordNotFound is
// passed through; login treats it the same as a wrong password.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var u model.User
	if err := r.DB.First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
