// internal/controller/customer_controller.go
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

type CustomerController struct {
	Repo   repository.CustomerRepositoryInterface
	Logger *zap.Logger
}

// CreateCustomer inserts a new customer and echoes the stored record,
// generated ID included.
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.Repo.Create(&customer); err != nil {
		c.Logger.Error("failed to create customer", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer overwrites all fields of the customer identified by the
// id in the payload.
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := c.Repo.Update(&customer)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Customer not found!")
			return
		}
		c.Logger.Error("failed to update customer", zap.Int("id", customer.ID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCustomer removes the customer at /customers/{id} and returns the
// deleted record.
func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	deleted, err := c.Repo.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Customer not found!")
			return
		}
		c.Logger.Error("failed to delete customer", zap.Int("id", id), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, deleted)
}

// GetCustomer returns one customer by /customers/{id}.
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := c.Repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Customer not found!")
			return
		}
		c.Logger.Error("failed to fetch customer", zap.Int("id", id), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// GetCustomers returns every customer.
func (c *CustomerController) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.Repo.ListAll()
	if err != nil {
		c.Logger.Error("failed to list customers", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetCustomersByTerm returns customers whose first name or email contains
// the /customers/q/{term} substring. Zero matches is a 404, mirroring the
// get-by-id contract.
func (c *CustomerController) GetCustomersByTerm(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	customers, err := c.Repo.SearchByTerm(term)
	if err != nil {
		c.Logger.Error("customer search failed", zap.String("term", term), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(customers) == 0 {
		c.Logger.Info("customer search matched nothing", zap.String("term", term))
		writeMessage(w, http.StatusNotFound, "Customer not found!")
		return
	}

	writeJSON(w, http.StatusOK, customers)
}
