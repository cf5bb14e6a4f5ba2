package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/FatimaNisar411/LinkVentory/internal/metrics"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
)

var (
	// ErrMalformedHeader is returned when the Authorization header is
	// missing or lacks the "Bearer " prefix.
	ErrMalformedHeader = errors.New("malformed authorization header")

	// ErrIdentityNotFound is returned when a valid token names an account
	// that no longer exists. Mapped to 401 like every other auth failure so
	// a stale token is indistinguishable from a bad one.
	ErrIdentityNotFound = errors.New("identity not found")
)

type contextKey string

// UserContextKey is the context key under which the authenticated
// *store.User is stored.
const UserContextKey contextKey = "user"

// Middleware authenticates API requests via HMAC-signed Bearer tokens.
// It is the sole gate on every protected route.
type Middleware struct {
	tokens *TokenService
	users  *store.UserStore
}

// NewMiddleware creates a new Middleware.
func NewMiddleware(tokens *TokenService, users *store.UserStore) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// AuthenticateHeader resolves an Authorization header value to the identity
// it names. It is an ordinary function, not framework magic, so handlers and
// tests can compose it directly: parse the Bearer prefix, validate the
// token, extract the subject, load the user.
func (m *Middleware) AuthenticateHeader(ctx context.Context, header string) (*store.User, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, ErrMalformedHeader
	}
	tokenString := strings.TrimPrefix(header, prefix)
	if tokenString == "" {
		return nil, ErrMalformedHeader
	}

	claims, err := m.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := m.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return user, nil
}

// Authenticate wraps AuthenticateHeader as http.Handler middleware. On
// success the *store.User is injected into the request context; any failure
// yields a 401 with the same generic body.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.AuthenticateHeader(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user, or nil if the request did
// not pass through Authenticate.
func UserFromContext(ctx context.Context) *store.User {
	user, _ := ctx.Value(UserContextKey).(*store.User)
	return user
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
// One message for every failure mode; the reason is never echoed back.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
