// internal/router/router.go
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nakarin/storefront-backend/internal/config"
	"github.com/nakarin/storefront-backend/internal/controller"
	"github.com/nakarin/storefront-backend/internal/middleware"
	"github.com/nakarin/storefront-backend/internal/service"
)

// Deps collects everything the route table needs.
type Deps struct {
	Customers *controller.CustomerController
	Products  *controller.ProductController
	Users     *controller.UserController
	AuthCtrl  *controller.AuthController
	Auth      *service.AuthService
	RateLimit config.RateLimitConfig
	Logger    *zap.Logger
}

// New builds the HTTP route table under /api/v1.
//
// The customer listing route used to be registered twice upstream, once
// rate-limited and once token-gated; here the two chains are merged so the
// limiter runs first and the token gate second.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(deps.Logger))

	limited := middleware.RateLimiter(deps.RateLimit)
	tokenGated := middleware.VerifyToken(deps.Auth, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Customer routes
		r.With(limited).Post("/customers", deps.Customers.CreateCustomer)
		r.With(limited).Put("/customers", deps.Customers.UpdateCustomer)
		r.With(limited).Delete("/customers/{id}", deps.Customers.DeleteCustomer)
		r.Get("/customers/{id}", deps.Customers.GetCustomer)
		r.With(limited).Get("/customers/q/{term}", deps.Customers.GetCustomersByTerm)
		r.With(limited, tokenGated).Get("/customers", deps.Customers.GetCustomers)

		// Product routes
		r.With(limited).Post("/products", deps.Products.CreateProduct)
		r.With(limited).Put("/products", deps.Products.UpdateProduct)
		r.With(limited).Delete("/products/{id}", deps.Products.DeleteProduct)
		r.Get("/products/{id}", deps.Products.GetProduct)
		r.With(limited).Get("/products/q/{term}", deps.Products.GetProductsByTerm)
		r.With(limited).Get("/products", deps.Products.GetProducts)

		// Registration and auth
		r.Post("/users", deps.Users.CreateUser)
		r.Post("/login", deps.AuthCtrl.Login)
		r.Get("/logout", deps.AuthCtrl.Logout)
	})

	return r
}
