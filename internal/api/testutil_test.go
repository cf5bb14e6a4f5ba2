package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FatimaNisar411/LinkVentory/internal/api"
	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/FatimaNisar411/LinkVentory/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router        http.Handler
	Hasher        *auth.PasswordHasher
	Tokens        *auth.TokenService
	UserStore     *store.UserStore
	LinkStore     *store.LinkStore
	CategoryStore *store.CategoryStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores and a deterministic
// signing key. bcrypt cost is the minimum so signup tests stay fast.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	tokens, err := auth.NewTokenService("test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	hasher := auth.NewPasswordHasher(4)

	us := store.NewUserStore(db)
	ls := store.NewLinkStore(db)
	cs := store.NewCategoryStore(db)

	deps := api.Deps{
		AuthMiddleware: auth.NewMiddleware(tokens, us),
		Hasher:         hasher,
		Tokens:         tokens,
		UserStore:      us,
		LinkStore:      ls,
		CategoryStore:  cs,
	}

	return &testEnv{
		Router:        api.NewAPIRouter(deps),
		Hasher:        hasher,
		Tokens:        tokens,
		UserStore:     us,
		LinkStore:     ls,
		CategoryStore: cs,
	}
}

// seedUser creates a user directly in the store and returns the record.
func seedUser(t *testing.T, env *testEnv, name, email, password string) *store.User {
	t.Helper()
	hash, err := env.Hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.UserStore.Create(context.Background(), name, email, hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedToken returns a valid bearer token for the given user.
func seedToken(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	tok, err := env.Tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// doJSON performs a JSON request against the router and returns the recorder.
func doJSON(t *testing.T, env *testEnv, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		authRequest(req, token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorder body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rec.Body.String())
	}
}
