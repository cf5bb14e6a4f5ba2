package api

import (
	"net/http"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate checks struct tags on request bodies (required, email format).
var validate = validator.New()

// Deps holds all dependencies required to build the API router.
type Deps struct {
	AuthMiddleware *auth.Middleware
	Hasher         *auth.PasswordHasher
	Tokens         *auth.TokenService
	UserStore      *store.UserStore
	LinkStore      *store.LinkStore
	CategoryStore  *store.CategoryStore
}

// NewAPIRouter creates a chi sub-router for /api/v1. Signup and login are
// public; everything else sits behind the bearer token middleware, which is
// the only way a handler ever learns who the caller is.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	registerAuthRoutes(r, deps.Hasher, deps.Tokens, deps.UserStore)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.Authenticate)

		registerUserRoutes(r)
		registerLinkRoutes(r, deps.LinkStore)
		registerCategoryRoutes(r, deps.CategoryStore)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
