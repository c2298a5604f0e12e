// internal/repository/product_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/model"
)

// ProductRepositoryInterface defines the data-access calls the product
// controller makes.
type ProductRepositoryInterface interface {
	Create(p *model.Product) error
	Update(p *model.Product) (*model.Product, error)
	Delete(id int) (*model.Product, error)
	GetByID(id int) (*model.Product, error)
	ListAll() ([]model.Product, error)
	SearchByTerm(term string) ([]model.Product, error)
}

// ProductRepository is the concrete GORM implementation
type ProductRepository struct {
	DB *gorm.DB
}

// Create inserts a product and fills in the generated product_id.
func (r *ProductRepository) Create(p *model.Product) error {
	return r.DB.Create(p).Error
}

// Update overwrites every mutable field of the row keyed by p.ProductID and
// returns the stored record.
func (r *ProductRepository) Update(p *model.Product) (*model.Product, error) {
	existing, err := r.GetByID(p.ProductID)
	if err != nil {
		return nil, err
	}
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Price = p.Price
	existing.Category = p.Category
	existing.ImageURL = p.ImageURL
	if err := r.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a product by ID and returns the deleted record.
func (r *ProductRepository) Delete(id int) (*model.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Delete(&model.Product{}, "product_id = ?", id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID fetches a product by product_id
func (r *ProductRepository) GetByID(id int) (*model.Product, error) {
	var p model.Product
	if err := r.DB.First(&p, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, err
	}
	return &p, nil
}

// ListAll fetches all products
func (r *ProductRepository) ListAll() ([]model.Product, error) {
	products := []model.Product{}
	if err := r.DB.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByTerm returns products whose name or category contains the term
// as a substring.
func (r *ProductRepository) SearchByTerm(term string) ([]model.Product, error) {
	products := []model.Product{}
	pattern := "%" + term + "%"
	if err := r.DB.
		Where("name LIKE ? OR category LIKE ?", pattern, pattern).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
