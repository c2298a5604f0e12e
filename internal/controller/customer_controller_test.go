// internal/controller/customer_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nakarin/storefront-backend/internal/controller"
	apperrors "github.com/nakarin/storefront-backend/internal/errors"
	"github.com/nakarin/storefront-backend/internal/model"
)

// --- Mock repository ---

type mockCustomerRepo struct {
	customers map[int]model.Customer
	nextID    int
}

func newMockCustomerRepo(seed ...model.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: map[int]model.Customer{}, nextID: 1}
	for _, c := range seed {
		c.ID = m.nextID
		m.customers[c.ID] = c
		m.nextID++
	}
	return m
}

func (m *mockCustomerRepo) Create(c *model.Customer) error {
	c.ID = m.nextID
	m.customers[c.ID] = *c
	m.nextID++
	return nil
}

func (m *mockCustomerRepo) Update(c *model.Customer) (*model.Customer, error) {
	if _, ok := m.customers[c.ID]; !ok {
		return nil, apperrors.NewNotFound("customer", c.ID)
	}
	m.customers[c.ID] = *c
	updated := *c
	return &updated, nil
}

func (m *mockCustomerRepo) Delete(id int) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer", id)
	}
	delete(m.customers, id)
	return &c, nil
}

func (m *mockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer", id)
	}
	return &c, nil
}

func (m *mockCustomerRepo) ListAll() ([]model.Customer, error) {
	out := []model.Customer{}
	for id := 1; id < m.nextID; id++ {
		if c, ok := m.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCustomerRepo) SearchByTerm(term string) ([]model.Customer, error) {
	out := []model.Customer{}
	for id := 1; id < m.nextID; id++ {
		c, ok := m.customers[id]
		if !ok {
			continue
		}
		if strings.Contains(c.FirstName, term) || strings.Contains(c.Email, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- Helpers ---

func customerRouter(repo *mockCustomerRepo) http.Handler {
	ctrl := &controller.CustomerController{Repo: repo, Logger: zap.NewNop()}
	r := chi.NewRouter()
	r.Post("/customers", ctrl.CreateCustomer)
	r.Put("/customers", ctrl.UpdateCustomer)
	r.Delete("/customers/{id}", ctrl.DeleteCustomer)
	r.Get("/customers/{id}", ctrl.GetCustomer)
	r.Get("/customers/q/{term}", ctrl.GetCustomersByTerm)
	r.Get("/customers", ctrl.GetCustomers)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestCreateThenGetCustomer(t *testing.T) {
	r := customerRouter(newMockCustomerRepo())

	w := doJSON(t, r, "POST", "/customers", map[string]string{
		"first_name":   "A",
		"last_name":    "B",
		"email":        "a@b.com",
		"address":      "somewhere",
		"phone_number": "555",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "A", created.FirstName)

	w = doJSON(t, r, "GET", "/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestGetCustomerNotFound(t *testing.T) {
	r := customerRouter(newMockCustomerRepo())

	w := doJSON(t, r, "GET", "/customers/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Customer not found!", body["message"])
}

func TestUpdateCustomerOverwritesAllFields(t *testing.T) {
	r := customerRouter(newMockCustomerRepo(model.Customer{
		FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
	}))

	w := doJSON(t, r, "PUT", "/customers", map[string]any{
		"id":           1,
		"first_name":   "Alicia",
		"last_name":    "Stone",
		"address":      "new address",
		"email":        "alicia@example.com",
		"phone_number": "081-000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Stone", updated.LastName)
	assert.Equal(t, "alicia@example.com", updated.Email)
}

func TestUpdateMissingCustomerIs404(t *testing.T) {
	r := customerRouter(newMockCustomerRepo())

	w := doJSON(t, r, "PUT", "/customers", map[string]any{"id": 9, "first_name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomerThenGetIs404(t *testing.T) {
	r := customerRouter(newMockCustomerRepo(model.Customer{FirstName: "Alice", Email: "alice@example.com"}))

	w := doJSON(t, r, "DELETE", "/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, "Alice", deleted.FirstName)

	w = doJSON(t, r, "GET", "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchCustomersMatchesEitherField(t *testing.T) {
	r := customerRouter(newMockCustomerRepo(
		model.Customer{FirstName: "Alice", Email: "alice@shop.com"},
		model.Customer{FirstName: "Bob", Email: "bob@alimail.com"},
		model.Customer{FirstName: "Carol", Email: "carol@shop.com"},
	))

	// "ali" appears in Alice's first name and in Bob's email.
	w := doJSON(t, r, "GET", "/customers/q/ali", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Alice", results[0].FirstName)
	assert.Equal(t, "Bob", results[1].FirstName)
}

func TestSearchCustomersNoMatchIs404(t *testing.T) {
	r := customerRouter(newMockCustomerRepo(
		model.Customer{FirstName: "Alice", Email: "alice@shop.com"},
	))

	w := doJSON(t, r, "GET", "/customers/q/zzz", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Customer not found!", body["message"])
}

func TestListCustomers(t *testing.T) {
	r := customerRouter(newMockCustomerRepo(
		model.Customer{FirstName: "Alice"},
		model.Customer{FirstName: "Bob"},
	))

	w := doJSON(t, r, "GET", "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 2)
}
