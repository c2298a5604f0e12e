// internal/repository/customer_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/model"
)

// CustomerRepositoryInterface defines the data-access calls the customer
// controller makes.
type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	Update(c *model.Customer) (*model.Customer, error)
	Delete(id int) (*model.Customer, error)
	GetByID(id int) (*model.Customer, error)
	ListAll() ([]model.Customer, error)
	SearchByTerm(term string) ([]model.Customer, error)
}

// CustomerRepository is the concrete GORM implementation
type CustomerRepository struct {
	DB *gorm.DB
}

// Create inserts a customer and fills in the generated ID.
func (r *CustomerRepository) Create(c *model.Customer) error {
	return r.DB.Create(c).Error
}

// Update overwrites every mutable field of the row keyed by c.ID and
// returns the stored record.
func (r *CustomerRepository) Update(c *model.Customer) (*model.Customer, error) {
	existing, err := r.GetByID(c.ID)
	if err != nil {
		return nil, err
	}
	existing.FirstName = c.FirstName
	existing.LastName = c.LastName
	existing.Address = c.Address
	existing.Email = c.Email
	existing.PhoneNumber = c.PhoneNumber
	if err := r.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a customer by ID and returns the deleted record.
func (r *CustomerRepository) Delete(id int) (*model.Customer, error) {
	c, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Delete(&model.Customer{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	var c model.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

// ListAll fetches all customers
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := r.DB.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// SearchByTerm returns customers whose first name or email contains the
// term as a substring. An empty result is not an error here; the caller
// decides how to report it.
func (r *CustomerRepository) SearchByTerm(term string) ([]model.Customer, error) {
	customers := []model.Customer{}
	pattern := "%" + term + "%"
	if err := r.DB.
		Where("first_name LIKE ? OR email LIKE ?", pattern, pattern).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
