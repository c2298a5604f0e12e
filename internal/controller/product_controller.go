// internal/controller/product_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/model"
	"github.com/nakarin/storefront-backend/internal/repository"
)

type ProductController struct {
	Repo   repository.ProductRepositoryInterface
	Logger *zap.Logger
}

// CreateProduct inserts a new product and echoes the stored record.
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.Repo.Create(&product); err != nil {
		c.Logger.Error("failed to create product", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct overwrites all fields of the product identified by the
// payload. Existing clients send the key as "id" here even though the
// entity serializes it as "product_id", so that name is kept on the wire.
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Category    string `json:"category"`
		ImageURL    string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := c.Repo.Update(&model.Product{
		ProductID:   body.ID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Product not found!")
			return
		}
		c.Logger.Error("failed to update product", zap.Int("id", body.ID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProduct removes the product at /products/{id} and returns the
// deleted record.
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	deleted, err := c.Repo.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Product not found!")
			return
		}
		c.Logger.Error("failed to delete product", zap.Int("id", id), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, deleted)
}

// GetProduct returns one product by /products/{id}.
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.Repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Product not found!")
			return
		}
		c.Logger.Error("failed to fetch product", zap.Int("id", id), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetProducts returns every product.
func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.Repo.ListAll()
	if err != nil {
		c.Logger.Error("failed to list products", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProductsByTerm returns products whose name or category contains the
// /products/q/{term} substring.
func (c *ProductController) GetProductsByTerm(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	products, err := c.Repo.SearchByTerm(term)
	if err != nil {
		c.Logger.Error("product search failed", zap.String("term", term), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(products) == 0 {
		c.Logger.Info("product search matched nothing", zap.String("term", term))
		writeMessage(w, http.StatusNotFound, "Product not found!")
		return
	}

	writeJSON(w, http.StatusOK, products)
}
