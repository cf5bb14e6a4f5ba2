package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/FatimaNisar411/LinkVentory/internal/api"
)

func TestSignup_OK(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env, "POST", "/signup", `{"name":"Ann","email":"ann@x.com","password":"pw123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.TokenResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" {
		t.Error("access_token is empty")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want %q", resp.TokenType, "bearer")
	}

	// The returned token authenticates immediately.
	me := doJSON(t, env, "GET", "/me", "", resp.AccessToken)
	if me.Code != http.StatusOK {
		t.Fatalf("GET /me status = %d, want %d; body: %s", me.Code, http.StatusOK, me.Body.String())
	}
	var user api.UserResponse
	decodeBody(t, me, &user)
	if user.Email != "ann@x.com" {
		t.Errorf("email = %q, want %q", user.Email, "ann@x.com")
	}

	// The stored credential is not the plaintext.
	stored, err := env.UserStore.GetByEmail(context.Background(), "ann@x.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.PasswordHash == "pw123" {
		t.Error("password stored in plaintext")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "Ann", "ann@x.com", "pw123")

	rec := doJSON(t, env, "POST", "/signup", `{"name":"Imposter","email":"ann@x.com","password":"other"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	// The existing identity is unchanged and the old password still works.
	login := doJSON(t, env, "POST", "/login", `{"email":"ann@x.com","password":"pw123"}`, "")
	if login.Code != http.StatusOK {
		t.Errorf("login after duplicate signup = %d, want %d", login.Code, http.StatusOK)
	}
}

func TestSignup_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`not json`,
		`{"name":"Ann","password":"pw123"}`,
		`{"name":"Ann","email":"not-an-email","password":"pw123"}`,
		`{"name":"Ann","email":"ann@x.com"}`,
	} {
		rec := doJSON(t, env, "POST", "/signup", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestLogin_Scenario(t *testing.T) {
	env := newTestEnv(t)

	signup := doJSON(t, env, "POST", "/signup", `{"name":"Ann","email":"ann@x.com","password":"pw123"}`, "")
	if signup.Code != http.StatusOK {
		t.Fatalf("signup status = %d; body: %s", signup.Code, signup.Body.String())
	}

	login := doJSON(t, env, "POST", "/login", `{"email":"ann@x.com","password":"pw123"}`, "")
	if login.Code != http.StatusOK {
		t.Fatalf("login status = %d; body: %s", login.Code, login.Body.String())
	}
	var resp api.TokenResponse
	decodeBody(t, login, &resp)
	me := doJSON(t, env, "GET", "/me", "", resp.AccessToken)
	if me.Code != http.StatusOK {
		t.Errorf("GET /me with login token = %d, want %d", me.Code, http.StatusOK)
	}

	wrong := doJSON(t, env, "POST", "/login", `{"email":"ann@x.com","password":"wrong"}`, "")
	if wrong.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want %d", wrong.Code, http.StatusUnauthorized)
	}
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "Ann", "ann@x.com", "pw123")

	wrongPassword := doJSON(t, env, "POST", "/login", `{"email":"ann@x.com","password":"wrong"}`, "")
	unknownEmail := doJSON(t, env, "POST", "/login", `{"email":"nobody@x.com","password":"wrong"}`, "")

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want both %d", wrongPassword.Code, unknownEmail.Code, http.StatusUnauthorized)
	}
	// Byte-identical bodies: no account enumeration via error text.
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("bodies differ:\n%s\n%s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/me"},
		{"GET", "/links"},
		{"POST", "/links"},
		{"GET", "/categories"},
		{"POST", "/categories"},
	} {
		rec := doJSON(t, env, route.method, route.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want %d", route.method, route.path, rec.Code, http.StatusUnauthorized)
		}
	}
}
