package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/FatimaNisar411/LinkVentory/internal/testutil"
)

// okHandler returns 200 and records the authenticated user it saw.
func okHandler(seen **store.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func newTestMiddleware(t *testing.T, lifetime time.Duration) (*auth.Middleware, *auth.TokenService, *store.UserStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	users := store.NewUserStore(db)
	tokens, err := auth.NewTokenService("test-secret", "HS256", lifetime)
	require.NoError(t, err)
	return auth.NewMiddleware(tokens, users), tokens, users
}

func seedUser(t *testing.T, users *store.UserStore, email string) *store.User {
	t.Helper()
	u, err := users.Create(context.Background(), "Test User", email, "$2a$10$unused")
	require.NoError(t, err)
	return u
}

func TestMiddleware_ValidToken(t *testing.T) {
	mw, tokens, users := newTestMiddleware(t, time.Hour)
	u := seedUser(t, users, "alice@example.com")

	tok, err := tokens.Issue(u.Email)
	require.NoError(t, err)

	var seen *store.User
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler(&seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, u.ID, seen.ID)
}

func TestMiddleware_MissingAndMalformedHeaders(t *testing.T) {
	mw, tokens, users := newTestMiddleware(t, time.Hour)
	u := seedUser(t, users, "alice@example.com")

	tok, err := tokens.Issue(u.Email)
	require.NoError(t, err)

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer ", tok} {
		var seen *store.User
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Nil(t, seen, "header %q", header)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	mw, tokens, users := newTestMiddleware(t, -1*time.Second)
	u := seedUser(t, users, "alice@example.com")

	tok, err := tokens.Issue(u.Email)
	require.NoError(t, err)

	var seen *store.User
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler(&seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_DeletedAccount(t *testing.T) {
	// A structurally valid token whose subject no longer exists must fail
	// like any other bad token: 401, not 404.
	mw, tokens, _ := newTestMiddleware(t, time.Hour)

	tok, err := tokens.Issue("ghost@example.com")
	require.NoError(t, err)

	var seen *store.User
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler(&seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateHeader_Errors(t *testing.T) {
	mw, tokens, users := newTestMiddleware(t, time.Hour)
	seedUser(t, users, "alice@example.com")

	_, err := mw.AuthenticateHeader(context.Background(), "Token abc")
	assert.ErrorIs(t, err, auth.ErrMalformedHeader)

	_, err = mw.AuthenticateHeader(context.Background(), "Bearer not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	tok, err := tokens.Issue("gone@example.com")
	require.NoError(t, err)
	_, err = mw.AuthenticateHeader(context.Background(), "Bearer "+tok)
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}
