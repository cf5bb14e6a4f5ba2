package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/metrics"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/go-chi/chi/v5"
)

// authAPIHandler provides the signup and login endpoints.
type authAPIHandler struct {
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	users  *store.UserStore
}

// registerAuthRoutes registers the public signup and login routes on r.
func registerAuthRoutes(r chi.Router, hasher *auth.PasswordHasher, tokens *auth.TokenService, users *store.UserStore) {
	h := &authAPIHandler{hasher: hasher, tokens: tokens, users: users}
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

// Signup creates an account and returns a fresh access token.
// POST /api/v1/signup
//
// @Summary      Sign up
// @Description  Creates an account and returns a bearer access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "Account to create"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /signup [post]
func (h *authAPIHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, valid email, and password are required", "BAD_REQUEST")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Printf("api: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "email already registered", "DUPLICATE_EMAIL")
			return
		}
		log.Printf("api: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		log.Printf("api: issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.SignupsTotal.Inc()
	writeJSON(w, http.StatusOK, TokenResponse{
		Message:     "User created",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Login verifies credentials and returns a fresh access token. Unknown
// email and wrong password produce byte-identical 401 responses so the
// endpoint cannot be used to enumerate accounts.
// POST /api/v1/login
//
// @Summary      Log in
// @Description  Exchanges email and password for a bearer access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /login [post]
func (h *authAPIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required", "BAD_REQUEST")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.rejectLogin(w)
			return
		}
		log.Printf("api: look up user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	// A corrupt stored hash is treated exactly like a mismatch.
	ok, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Printf("api: verify credential for user %s: %v", user.ID, err)
	}
	if err != nil || !ok {
		h.rejectLogin(w)
		return
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		log.Printf("api: issue token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// rejectLogin is the single 401 path for every login failure.
func (h *authAPIHandler) rejectLogin(w http.ResponseWriter) {
	metrics.LoginsTotal.WithLabelValues("rejected").Inc()
	writeError(w, http.StatusUnauthorized, "invalid credentials", "INVALID_CREDENTIALS")
}
